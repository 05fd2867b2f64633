package loop

import "time"

// Stepper drives the loop from a host that owns its own frame loop, one
// iteration per host update. The exit is reported one frame late so the host
// still draws the last rendered frame.
type Stepper struct {
	loop   *Loop
	status Status
	done   bool
}

func NewStepper(l *Loop) *Stepper {
	return &Stepper{loop: l}
}

// Step runs one iteration and reports whether the host should stop now.
func (s *Stepper) Step(now time.Time, in Input) (stop bool) {
	if s.done {
		return true
	}
	s.status = s.loop.Poll(now, in)
	if s.status.Exit != ExitNone {
		s.done = true
	}
	return false
}

// Status is the result of the last iteration.
func (s *Stepper) Status() Status {
	return s.status
}
