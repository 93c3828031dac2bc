package session

import "time"

// Phase is the purpose of the current countdown.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Title returns a human readable phase name.
func (phase Phase) Title() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return string(phase)
	}
}

// Announcement is the one-shot message shown when the phase begins.
func (phase Phase) Announcement() string {
	switch phase {
	case PhaseShortBreak:
		return "Short Break!"
	case PhaseLongBreak:
		return "Long Break!"
	default:
		return "Pomodoro Session!"
	}
}

// EventType defines the type of controller event.
type EventType string

const (
	EventProgress    EventType = "progress"
	EventRunning     EventType = "running"
	EventPhaseChange EventType = "phase_change"
)

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Message  string
	At       time.Time
}

// Snapshot is a copy of the controller state suitable for display.
type Snapshot struct {
	Phase           Phase
	Remaining       time.Duration
	Total           time.Duration
	Running         bool
	CompletedCycles int
}

// Clock returns Remaining formatted as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.Remaining)
}
