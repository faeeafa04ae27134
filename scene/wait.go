package scene

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/geometry"
)

// Waiter blocks an interactive step, either until a key press or for a fixed
// duration.
type Waiter interface {
	Wait(keyPressed bool, d time.Duration) error
}

type WaiterFunc func(keyPressed bool, d time.Duration) error

func (f WaiterFunc) Wait(keyPressed bool, d time.Duration) error {
	return f(keyPressed, d)
}

// ReaderWaiter waits for a line on In when a key press is asked for, and
// sleeps otherwise. Terminals deliver input line by line, so the key is Enter.
type ReaderWaiter struct {
	in *bufio.Reader
}

func NewReaderWaiter(in io.Reader) *ReaderWaiter {
	return &ReaderWaiter{in: bufio.NewReader(in)}
}

func StdinWaiter() *ReaderWaiter {
	return NewReaderWaiter(os.Stdin)
}

func (w *ReaderWaiter) Wait(keyPressed bool, d time.Duration) error {
	if !keyPressed {
		time.Sleep(d)
		return nil
	}
	_, err := w.in.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return errors.Wrap(err, "waiting for key press")
}

// NoWait never blocks.
var NoWait = WaiterFunc(func(bool, time.Duration) error { return nil })

// DrawPivotInteractive steps the pivot to p, hands the scene to OnUpdate,
// then blocks on the waiter. Steps are drawn in the order they are called, so
// a solver can call it once per iteration.
func (s *Scene) DrawPivotInteractive(p geometry.Point, keyPressed bool, wait time.Duration) error {
	s.StepPivot(p)
	if s.opts.OnUpdate != nil {
		s.opts.OnUpdate(s)
	}
	return s.opts.Waiter.Wait(keyPressed, wait)
}

// PlayTrajectory steps through every point with DrawPivotInteractive.
func (s *Scene) PlayTrajectory(points []geometry.Point, keyPressed bool, wait time.Duration) error {
	for i, p := range points {
		if err := s.DrawPivotInteractive(p, keyPressed, wait); err != nil {
			return errors.WithMessagef(err, "step %d", i)
		}
	}
	return nil
}
