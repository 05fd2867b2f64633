package loop_test

import (
	"testing"
	"time"

	"pixel-snake/game/loop"

	"github.com/stretchr/testify/assert"
)

func TestScheduler(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 80 * time.Millisecond

	t.Run("waits for a full step", func(t *testing.T) {
		s := loop.NewScheduler(step, start)

		tick, wakeAt := s.Poll(start.Add(79 * time.Millisecond))
		assert.False(t, tick)
		assert.Equal(t, start.Add(step), wakeAt)

		tick, wakeAt = s.Poll(start.Add(step))
		assert.True(t, tick)
		assert.Equal(t, start.Add(2*step), wakeAt)
		assert.Equal(t, start.Add(step), s.LastTick())
	})

	t.Run("no catch-up after a stall", func(t *testing.T) {
		s := loop.NewScheduler(step, start)
		late := start.Add(10 * step)

		tick, _ := s.Poll(late)
		assert.True(t, tick)

		tick, wakeAt := s.Poll(late)
		assert.False(t, tick)
		assert.Equal(t, late.Add(step), wakeAt)
	})

	t.Run("never ticks faster than the step", func(t *testing.T) {
		s := loop.NewScheduler(step, start)

		var ticks []time.Time
		for now := start; now.Before(start.Add(time.Second)); now = now.Add(7 * time.Millisecond) {
			if tick, _ := s.Poll(now); tick {
				ticks = append(ticks, now)
			}
		}

		assert.NotEmpty(t, ticks)
		for i := 1; i < len(ticks); i++ {
			assert.GreaterOrEqual(t, ticks[i].Sub(ticks[i-1]), step)
		}
	})
}
