package loop

import "time"

// Scheduler gates engine ticks to a fixed step, independent of how often it
// is polled. Missed steps are dropped, never replayed.
type Scheduler struct {
	step     time.Duration
	lastTick time.Time
}

func NewScheduler(step time.Duration, now time.Time) *Scheduler {
	return &Scheduler{
		step:     step,
		lastTick: now,
	}
}

// Poll reports whether a tick is due at now, and when the caller should poll
// again at the earliest.
func (s *Scheduler) Poll(now time.Time) (tick bool, wakeAt time.Time) {
	if now.Sub(s.lastTick) >= s.step {
		s.lastTick = now
		return true, now.Add(s.step)
	}
	return false, s.lastTick.Add(s.step)
}

func (s *Scheduler) LastTick() time.Time {
	return s.lastTick
}
