package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/region"
	"github.com/osuushi/lpvisu/scene"
)

var trajectory = []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 6, Y: 4}}

func newTextbookScene(t *testing.T) *scene.Scene {
	t.Helper()
	r, err := region.New([]region.Constraint{
		region.Row(0, 1, 6),
		region.Row(1, 2, 15),
		region.Row(1, 1, 10),
		region.Row(1, -1, 2),
	}, region.DefaultOptions())
	require.NoError(t, err)
	s, err := scene.New(r, [2]float64{2, 1}, scene.Options{Waiter: scene.NoWait})
	require.NoError(t, err)
	require.NoError(t, s.Draw())
	return s
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestStepping(t *testing.T) {
	s := newTextbookScene(t)
	m := New(s, trajectory, Options{})
	assert.Equal(t, 0, m.Step())
	assert.Nil(t, m.Init())

	m, _ = update(t, m, keyPress("n"))
	m, _ = update(t, m, keyPress("n"))
	assert.Equal(t, 2, m.Step())
	assert.Equal(t, 1, s.List().Count(scene.RoleTrail))
	pivot, ok := s.Pivot()
	assert.True(t, ok)
	assert.Equal(t, trajectory[1], pivot)

	m, _ = update(t, m, keyPress("n"))
	m, _ = update(t, m, keyPress("n"))
	assert.Equal(t, 3, m.Step(), "stepping stops at the end")
	assert.Equal(t, 2, s.List().Count(scene.RoleTrail))

	m, _ = update(t, m, keyPress("p"))
	assert.Equal(t, 2, m.Step())
	assert.Equal(t, 1, s.List().Count(scene.RoleTrail), "stepping back drops the last segment")

	m, _ = update(t, m, keyPress("r"))
	assert.Equal(t, 0, m.Step())
	assert.Equal(t, 0, s.List().Count(scene.RolePivot))
}

func TestObjectiveToggle(t *testing.T) {
	s := newTextbookScene(t)
	m := New(s, trajectory, Options{Objective: true})
	assert.Equal(t, 0, s.List().Count(scene.RoleObjective), "no pivot, no line")

	m, _ = update(t, m, keyPress("n"))
	m, _ = update(t, m, keyPress("n"))
	assert.Equal(t, 1, s.List().Count(scene.RoleObjective))
	value, ok := s.ObjectiveValue()
	assert.True(t, ok)
	assert.Equal(t, 4.0, value)

	m, _ = update(t, m, keyPress("o"))
	assert.Equal(t, 0, s.List().Count(scene.RoleObjective))
	assert.Equal(t, 2, m.Step())
}

func TestAutoplay(t *testing.T) {
	s := newTextbookScene(t)
	m := New(s, trajectory, Options{Autoplay: true, Interval: time.Millisecond})
	assert.True(t, m.Playing())
	assert.NotNil(t, m.Init())

	for i := 0; i < len(trajectory); i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, tickMsg{gen: m.tickGen})
		assert.NotNil(t, cmd)
	}
	assert.Equal(t, 3, m.Step())

	m, cmd := update(t, m, tickMsg{gen: m.tickGen})
	assert.Nil(t, cmd)
	assert.False(t, m.Playing(), "playback ends with the trajectory")
}

func TestPauseDropsStaleTicks(t *testing.T) {
	s := newTextbookScene(t)
	m := New(s, trajectory, Options{Autoplay: true})
	gen := m.tickGen

	m, _ = update(t, m, keyPress("a"))
	assert.False(t, m.Playing())
	m, _ = update(t, m, keyPress("a"))
	assert.True(t, m.Playing())

	m, cmd := update(t, m, tickMsg{gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Step())
}

func TestQuit(t *testing.T) {
	m := New(newTextbookScene(t), trajectory, Options{})
	_, cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := New(newTextbookScene(t), trajectory, Options{})
	assert.Empty(t, m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	m, _ = update(t, m, keyPress("n"))
	view := m.View()
	assert.Contains(t, view, "step 1/3")
	assert.True(t, strings.ContainsFunc(view, func(r rune) bool { return r > 0x2800 && r <= 0x28ff }), "the canvas has braille in it")
}

func TestRender(t *testing.T) {
	s := newTextbookScene(t)
	lines := Render(s, 40, 20, false)
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, 40, len([]rune(line)))
	}
	assert.NotEqual(t, strings.Repeat(" ", 40), lines[10], "the region crosses the middle row")
}

func TestRenderSteepLine(t *testing.T) {
	r, err := region.New([]region.Constraint{
		region.Row(0, 1, 6),
		region.Row(1, 2, 15),
		region.Row(1, 1, 10),
		region.Row(1, -1, 2),
		region.Row(1, 1e-7, 7),
	}, region.DefaultOptions())
	require.NoError(t, err)
	s, err := scene.New(r, [2]float64{2, 1}, scene.Options{Waiter: scene.NoWait})
	require.NoError(t, err)
	require.NoError(t, s.Draw())

	start := time.Now()
	lines := Render(s, 80, 24, true)
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, lines, 24)

	plain := Render(s, 80, 24, false)
	require.Len(t, plain, 24)
	for _, line := range plain {
		assert.Equal(t, 80, len([]rune(line)))
	}
}
