package kiosk

import (
	"fmt"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

// fastSteps is how many steps a Shift+arrow nudge moves.
const fastSteps = 10

// selector cycles through the scalar controls for keyboard editing.
type selector struct {
	controls []ocean.Control
	index    int
}

func newSelector(controls []ocean.Control) *selector {
	return &selector{controls: controls}
}

// current returns the selected control.
func (s *selector) current() ocean.Control {
	return s.controls[s.index]
}

// next moves the selection forward (or backward), wrapping around.
func (s *selector) next(backward bool) {
	n := len(s.controls)
	if backward {
		s.index = (s.index + n - 1) % n
	} else {
		s.index = (s.index + 1) % n
	}
}

// nudge changes the selected value by one step in direction dir (+1 or
// -1), or by fastSteps when fast is set.
func (s *selector) nudge(p *ocean.Params, dir int, fast bool) {
	steps := dir
	if fast {
		steps *= fastSteps
	}
	s.current().Nudge(p, steps)
}

// label describes the selected control for the window title.
func (s *selector) label(p *ocean.Params) string {
	c := s.current()
	name := c.String(p)
	if c.Group != "" {
		name = c.Group + " " + name
	}
	return fmt.Sprintf("[%d/%d] %s", s.index+1, len(s.controls), name)
}
