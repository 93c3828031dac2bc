package model

import (
	"fmt"
	"time"
)

// Bounds limits a duration entered by the user, in whole minutes.
type Bounds struct {
	MinMinutes int
	MaxMinutes int
}

// Contains reports whether minutes falls inside the bounds.
func (bounds Bounds) Contains(minutes int) bool {
	return minutes >= bounds.MinMinutes && minutes <= bounds.MaxMinutes
}

var (
	WorkBounds       = Bounds{MinMinutes: 1, MaxMinutes: 60}
	ShortBreakBounds = Bounds{MinMinutes: 1, MaxMinutes: 30}
	LongBreakBounds  = Bounds{MinMinutes: 1, MaxMinutes: 60}
)

// TimerConfig holds the configured length of each phase.
type TimerConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultTimerConfig returns the classic 25/5/15 schedule.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Validate checks that every duration is positive.
func (config TimerConfig) Validate() error {
	fields := []struct {
		name  string
		value time.Duration
	}{
		{"work", config.Work},
		{"short_break", config.ShortBreak},
		{"long_break", config.LongBreak},
	}
	for _, field := range fields {
		if field.value <= 0 {
			return &InputError{
				Field:  field.name,
				Value:  field.value.String(),
				Reason: fmt.Sprintf("must be positive, got %s", field.value),
			}
		}
	}
	return nil
}
