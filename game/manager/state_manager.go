package manager

import (
	"time"
)

// SessionStats is an in-memory summary of one game. Nothing is written to disk.
type SessionStats struct {
	Ticks       int
	FruitsEaten int
	MaxLength   int
	Duration    time.Duration
}

// StateManager counts what happened during a session.
type StateManager struct {
	startTime   time.Time
	ticks       int
	fruitsEaten int
	maxLength   int
}

func NewStateManager(startTime time.Time) *StateManager {
	return &StateManager{
		startTime: startTime,
		maxLength: 1,
	}
}

// RecordTick registers one engine tick and the snake length after it.
func (sm *StateManager) RecordTick(ate bool, length int) {
	sm.ticks++
	if ate {
		sm.fruitsEaten++
	}
	if length > sm.maxLength {
		sm.maxLength = length
	}
}

func (sm *StateManager) Summary(now time.Time) SessionStats {
	return SessionStats{
		Ticks:       sm.ticks,
		FruitsEaten: sm.fruitsEaten,
		MaxLength:   sm.maxLength,
		Duration:    now.Sub(sm.startTime),
	}
}
