// Package tui steps through a pivot trajectory in the terminal, drawing the
// scene on a braille canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/region"
	"github.com/osuushi/lpvisu/scene"
)

type Options struct {
	// Delay between steps while playing.
	Interval time.Duration
	// Start playing right away instead of waiting for keys.
	Autoplay bool
	// Move the objective line through every pivot.
	Objective bool
}

type Model struct {
	scene *scene.Scene
	path  []geometry.Point
	step  int // pivots placed so far

	interval  time.Duration
	playing   bool
	tickGen   int
	objective bool

	width  int
	height int

	keys   keyMap
	help   help.Model
	status string
	err    error
}

type tickMsg struct{ gen int }

func New(s *scene.Scene, path []geometry.Point, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	m := Model{
		scene:     s,
		path:      path,
		interval:  opts.Interval,
		playing:   opts.Autoplay,
		objective: opts.Objective,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.seek(0)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		// Ticks from before the last pause are stale
		if !m.playing || msg.gen != m.tickGen {
			return m, nil
		}
		if m.step >= len(m.path) {
			m.playing = false
			m.status = "done"
			return m, nil
		}
		m.seek(m.step + 1)
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.seek(m.step + 1)
		case key.Matches(msg, m.keys.Prev):
			m.seek(m.step - 1)
		case key.Matches(msg, m.keys.Reset):
			m.seek(0)
		case key.Matches(msg, m.keys.Objective):
			m.objective = !m.objective
			m.seek(m.step)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Play):
			m.playing = !m.playing
			m.tickGen++
			if m.playing {
				if m.step >= len(m.path) {
					m.seek(0)
				}
				return m, m.tick()
			}
			m.status = "paused"
		}
	}
	return m, nil
}

// seek replays the trajectory up to n pivots, so that stepping back leaves
// the same picture stepping forward did.
func (m *Model) seek(n int) {
	n = max(0, min(n, len(m.path)))
	m.scene.RemovePivot()
	for _, p := range m.path[:n] {
		m.scene.StepPivot(p)
	}
	m.step = n
	m.err = nil

	pivot, ok := m.scene.Pivot()
	if !ok {
		m.scene.RemoveObjectiveFunction()
		m.status = fmt.Sprintf("step 0/%d", len(m.path))
		return
	}
	value := region.Value(m.scene.Objective(), pivot)
	m.status = fmt.Sprintf("step %d/%d  x = (%g, %g)  z = %g", n, len(m.path), pivot.X, pivot.Y, value)
	if m.objective {
		m.err = m.scene.DrawObjectiveFunction(value)
	} else {
		m.scene.RemoveObjectiveFunction()
	}
}

// Step is the number of pivots placed.
func (m Model) Step() int {
	return m.step
}

func (m Model) Playing() bool {
	return m.playing
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" lpvisu ") + " " + dimStyle.Render(m.status)
	if m.err != nil {
		header += " " + errStyle.Render(m.err.Error())
	}
	footer := m.help.View(m.keys)

	// Border takes two cells each way
	w := max(8, m.width-2)
	h := max(4, m.height-lipgloss.Height(header)-lipgloss.Height(footer)-2)
	lines := Render(m.scene, w, h, true)
	body := boxStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Run shows the scene full screen until the user quits.
func Run(s *scene.Scene, path []geometry.Point, opts Options) error {
	_, err := tea.NewProgram(New(s, path, opts), tea.WithAltScreen()).Run()
	return errors.Wrap(err, "running viewer")
}
