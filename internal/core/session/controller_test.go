package session

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:       3 * time.Second,
		ShortBreak: 2 * time.Second,
		LongBreak:  4 * time.Second,
	}
}

func newTestController(t *testing.T, config model.TimerConfig) (*Controller, *[]Event) {
	t.Helper()
	controller, err := New(config)
	require.NoError(t, err)
	events := &[]Event{}
	controller.Subscribe(func(event Event) {
		*events = append(*events, event)
	})
	return controller, events
}

// runPhase starts the controller and ticks until the current phase ends.
func runPhase(controller *Controller) {
	controller.Start()
	for controller.Running() {
		controller.Tick()
	}
}

func phaseChanges(events []Event) []Event {
	var changes []Event
	for _, event := range events {
		if event.Type == EventPhaseChange {
			changes = append(changes, event)
		}
	}
	return changes
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(model.TimerConfig{Work: time.Minute})
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestNew_StartsIdleInWork(t *testing.T) {
	controller, _ := newTestController(t, testConfig())

	snapshot := controller.Snapshot()
	assert.Equal(t, PhaseWork, snapshot.Phase)
	assert.Equal(t, 3*time.Second, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Zero(t, snapshot.CompletedCycles)
}

func TestReset_ReturnsToWork(t *testing.T) {
	configs := []model.TimerConfig{
		testConfig(),
		model.DefaultTimerConfig(),
		{Work: time.Minute, ShortBreak: 30 * time.Minute, LongBreak: 60 * time.Minute},
	}

	for _, config := range configs {
		controller, _ := newTestController(t, config)
		runPhase(controller)
		controller.Start()
		controller.Tick()

		controller.Reset()

		snapshot := controller.Snapshot()
		assert.Equal(t, PhaseWork, snapshot.Phase)
		assert.Equal(t, config.Work, snapshot.Remaining)
		assert.False(t, snapshot.Running)
		assert.Equal(t, 1, snapshot.CompletedCycles, "reset keeps the long break cadence")
	}
}

func TestTick_NoOpWhenNotRunning(t *testing.T) {
	controller, events := newTestController(t, testConfig())

	controller.Tick()

	assert.Equal(t, 3*time.Second, controller.Snapshot().Remaining)
	assert.Empty(t, *events)
}

func TestTick_ExactlyOneTransitionPerPhase(t *testing.T) {
	controller, events := newTestController(t, testConfig())
	controller.Start()

	for i := 0; i < 3; i++ {
		controller.Tick()
	}

	changes := phaseChanges(*events)
	require.Len(t, changes, 1)
	assert.Equal(t, PhaseShortBreak, changes[0].Snapshot.Phase)
	assert.Equal(t, "Short Break!", changes[0].Message)

	snapshot := controller.Snapshot()
	assert.Equal(t, PhaseShortBreak, snapshot.Phase)
	assert.Equal(t, 2*time.Second, snapshot.Remaining)
	assert.False(t, snapshot.Running, "next phase must wait for Start")
	assert.Equal(t, 1, snapshot.CompletedCycles)

	controller.Tick()
	assert.Equal(t, 2*time.Second, controller.Snapshot().Remaining)
	assert.Len(t, phaseChanges(*events), 1)
}

func TestEvents_StampedWithClock(t *testing.T) {
	controller, events := newTestController(t, testConfig())
	current := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	controller.SetClock(func() time.Time { return current })

	controller.Start()
	current = current.Add(time.Second)
	controller.Tick()

	require.Len(t, *events, 2)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), (*events)[0].At)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 1, 0, time.UTC), (*events)[1].At)
}

func TestTick_EmitsProgressEachSecond(t *testing.T) {
	controller, events := newTestController(t, testConfig())
	controller.Start()
	*events = nil

	controller.Tick()
	controller.Tick()

	require.Len(t, *events, 2)
	assert.Equal(t, EventProgress, (*events)[0].Type)
	assert.Equal(t, "00:02", (*events)[0].Snapshot.Clock())
	assert.Equal(t, "00:01", (*events)[1].Snapshot.Clock())
}

func TestCycleSequence(t *testing.T) {
	controller, events := newTestController(t, testConfig())

	for i := 0; i < 12; i++ {
		runPhase(controller)
	}

	expected := []Phase{
		PhaseShortBreak, PhaseWork, PhaseShortBreak, PhaseLongBreak,
		PhaseWork, PhaseShortBreak, PhaseWork, PhaseLongBreak,
		PhaseWork, PhaseShortBreak, PhaseWork, PhaseLongBreak,
	}
	changes := phaseChanges(*events)
	require.Len(t, changes, len(expected))
	for i, change := range changes {
		assert.Equal(t, expected[i], change.Snapshot.Phase, "cycle %d", i+1)
		assert.Equal(t, i+1, change.Snapshot.CompletedCycles)
		if (i+1)%LongBreakEvery == 0 {
			assert.Equal(t, PhaseLongBreak, change.Snapshot.Phase)
			assert.Equal(t, "Long Break!", change.Message)
		}
	}
}

func TestNextPhase(t *testing.T) {
	tests := []struct {
		name     string
		current  Phase
		cycles   int
		expected Phase
	}{
		{name: "work to short break", current: PhaseWork, cycles: 1, expected: PhaseShortBreak},
		{name: "short break to work", current: PhaseShortBreak, cycles: 2, expected: PhaseWork},
		{name: "long break to work", current: PhaseLongBreak, cycles: 5, expected: PhaseWork},
		{name: "fourth cycle after break", current: PhaseShortBreak, cycles: 4, expected: PhaseLongBreak},
		{name: "eighth cycle after work", current: PhaseWork, cycles: 8, expected: PhaseLongBreak},
		{name: "long break wins over alternation", current: PhaseLongBreak, cycles: 12, expected: PhaseLongBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextPhase(tt.current, tt.cycles))
		})
	}
}

func TestPauseThenStart_Resumes(t *testing.T) {
	controller, _ := newTestController(t, testConfig())
	controller.Start()
	controller.Tick()

	controller.Pause()
	assert.False(t, controller.Running())
	controller.Tick()
	assert.Equal(t, 2*time.Second, controller.Snapshot().Remaining)

	controller.Start()
	assert.True(t, controller.Running())
	assert.Equal(t, 2*time.Second, controller.Snapshot().Remaining)
}

func TestStart_IdempotentWhileRunning(t *testing.T) {
	controller, events := newTestController(t, testConfig())
	controller.Start()
	controller.Tick()
	*events = nil

	controller.Start()

	assert.Empty(t, *events)
	assert.Equal(t, 2*time.Second, controller.Snapshot().Remaining)
}

func TestConfigure_DeferredWhileCountdownUnderway(t *testing.T) {
	controller, _ := newTestController(t, testConfig())
	controller.Start()
	controller.Tick()

	updated := model.TimerConfig{Work: 10 * time.Second, ShortBreak: 7 * time.Second, LongBreak: 9 * time.Second}
	require.NoError(t, controller.Configure(updated))

	snapshot := controller.Snapshot()
	assert.Equal(t, 2*time.Second, snapshot.Remaining)
	assert.Equal(t, 3*time.Second, snapshot.Total)

	controller.Pause()
	require.NoError(t, controller.Configure(updated))
	assert.Equal(t, 2*time.Second, controller.Snapshot().Remaining)

	controller.Start()
	controller.Tick()
	controller.Tick()
	assert.Equal(t, PhaseShortBreak, controller.Snapshot().Phase)
	assert.Equal(t, 7*time.Second, controller.Snapshot().Remaining)
}

func TestConfigure_RefreshesFreshPhase(t *testing.T) {
	controller, events := newTestController(t, testConfig())

	require.NoError(t, controller.Configure(model.TimerConfig{Work: 8 * time.Second, ShortBreak: time.Second, LongBreak: time.Second}))

	assert.Equal(t, 8*time.Second, controller.Snapshot().Remaining)
	require.Len(t, *events, 1)
	assert.Equal(t, EventProgress, (*events)[0].Type)
}

func TestConfigure_RejectsInvalidAndKeepsPrior(t *testing.T) {
	controller, _ := newTestController(t, testConfig())

	err := controller.Configure(model.TimerConfig{Work: 0, ShortBreak: time.Second, LongBreak: time.Second})

	assert.ErrorIs(t, err, model.ErrInvalidConfig)
	assert.Equal(t, testConfig(), controller.Config())
	assert.Equal(t, 3*time.Second, controller.Snapshot().Remaining)
}

func TestRemainingStaysWithinTotal(t *testing.T) {
	controller, events := newTestController(t, testConfig())

	for i := 0; i < 6; i++ {
		runPhase(controller)
	}

	for _, event := range *events {
		assert.GreaterOrEqual(t, event.Snapshot.Remaining, time.Duration(0))
		assert.LessOrEqual(t, event.Snapshot.Remaining, event.Snapshot.Total)
	}
}
