package session

import (
	"time"

	"pomodoro/internal/core/model"
)

// LongBreakEvery is the number of completed cycles between long breaks.
const LongBreakEvery = 4

// TickInterval is the amount of time removed by a single Tick.
const TickInterval = time.Second

// Controller is the Pomodoro phase state machine.
//
// It owns no goroutines or timers. All methods must be called from one
// goroutine, normally the UI event loop; an external driver calls Tick
// once per second while the countdown is running.
type Controller struct {
	config          model.TimerConfig
	phase           Phase
	remaining       time.Duration
	total           time.Duration
	running         bool
	fresh           bool
	completedCycles int
	observers       []func(Event)
	now             func() time.Time
}

// New creates a Controller in the idle work phase.
func New(config model.TimerConfig) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	controller := &Controller{
		config: config,
		now:    time.Now,
	}
	controller.enterPhase(PhaseWork)
	return controller, nil
}

// Subscribe registers an observer. Observers run synchronously inside
// the call that produced the event.
func (controller *Controller) Subscribe(observer func(Event)) {
	if observer == nil {
		return
	}
	controller.observers = append(controller.observers, observer)
}

// SetClock replaces the time source used to stamp events.
func (controller *Controller) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	controller.now = now
}

// Config returns the currently configured durations.
func (controller *Controller) Config() model.TimerConfig {
	return controller.config
}

// Configure replaces the phase durations. A countdown already under way
// keeps its length; the new values apply from the next phase start. When
// the current phase has not been started yet its remaining time is
// refreshed right away.
func (controller *Controller) Configure(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	controller.config = config
	if controller.fresh && !controller.running {
		controller.enterPhase(controller.phase)
		controller.emit(EventProgress, "")
	}
	return nil
}

// Start begins or resumes the countdown. Resuming keeps the remaining time;
// starting a fresh phase loads its configured duration.
func (controller *Controller) Start() {
	if controller.running {
		return
	}
	if controller.fresh {
		controller.enterPhase(controller.phase)
		controller.fresh = false
	}
	controller.running = true
	controller.emit(EventRunning, "")
}

// Pause stops the countdown and keeps the remaining time.
func (controller *Controller) Pause() {
	if !controller.running {
		return
	}
	controller.running = false
	controller.emit(EventRunning, "")
}

// Reset stops the countdown and returns to a fresh work phase.
// Completed cycles are kept so the long break cadence survives a reset.
func (controller *Controller) Reset() {
	controller.running = false
	controller.enterPhase(PhaseWork)
	controller.emit(EventRunning, "")
}

// Tick removes one second from the running countdown and performs the
// phase transition when it reaches zero. It is a no-op while paused.
func (controller *Controller) Tick() {
	if !controller.running {
		return
	}

	controller.remaining -= TickInterval
	if controller.remaining > 0 {
		controller.emit(EventProgress, "")
		return
	}

	controller.remaining = 0
	controller.advancePhase()
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:           controller.phase,
		Remaining:       controller.remaining,
		Total:           controller.total,
		Running:         controller.running,
		CompletedCycles: controller.completedCycles,
	}
}

// Running reports whether the countdown is active.
func (controller *Controller) Running() bool {
	return controller.running
}

// NextPhase returns the phase that follows current once completed cycles
// reaches cycles. The long break rule takes precedence over alternation.
func NextPhase(current Phase, cycles int) Phase {
	if cycles > 0 && cycles%LongBreakEvery == 0 {
		return PhaseLongBreak
	}
	if current == PhaseWork {
		return PhaseShortBreak
	}
	return PhaseWork
}

func (controller *Controller) advancePhase() {
	controller.completedCycles++
	next := NextPhase(controller.phase, controller.completedCycles)
	controller.running = false
	controller.enterPhase(next)
	controller.emit(EventPhaseChange, next.Announcement())
}

func (controller *Controller) enterPhase(phase Phase) {
	controller.phase = phase
	controller.total = controller.durationOf(phase)
	controller.remaining = controller.total
	controller.fresh = true
}

func (controller *Controller) durationOf(phase Phase) time.Duration {
	switch phase {
	case PhaseShortBreak:
		return controller.config.ShortBreak
	case PhaseLongBreak:
		return controller.config.LongBreak
	default:
		return controller.config.Work
	}
}

func (controller *Controller) emit(eventType EventType, message string) {
	event := Event{
		Type:     eventType,
		Snapshot: controller.Snapshot(),
		Message:  message,
		At:       controller.now(),
	}
	for _, observer := range controller.observers {
		observer(event)
	}
}
