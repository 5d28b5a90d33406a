package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		WorkDuration:           25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		SessionsUntilLongBreak: 4,
	}
}

func TestNewTimerStartsIdleAtWorkPhase(t *testing.T) {
	tm := New(testConfig())

	snap := tm.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, PhaseWork, snap.Phase)
	assert.Equal(t, 25*60, snap.Remaining)
	assert.Equal(t, 25*60, snap.PlannedTotal)
	assert.Equal(t, 0, snap.CompletedCycle)
}

func TestStartPauseTransitions(t *testing.T) {
	tm := New(testConfig())

	assert.True(t, tm.Start())
	assert.Equal(t, "running", tm.Snapshot().State)

	// Start while running is a no-op
	assert.False(t, tm.Start())

	assert.True(t, tm.Pause())
	assert.Equal(t, "paused", tm.Snapshot().State)

	// Pause while paused is a no-op
	assert.False(t, tm.Pause())

	// Resume from paused
	assert.True(t, tm.Start())
	assert.Equal(t, "running", tm.Snapshot().State)
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	tm := New(testConfig())

	_, done := tm.Tick()
	assert.False(t, done)
	assert.Equal(t, 25*60, tm.Snapshot().Remaining)

	tm.Start()
	tm.Pause()
	_, done = tm.Tick()
	assert.False(t, done)
	assert.Equal(t, 25*60, tm.Snapshot().Remaining)
}

func TestTickCountsDownToCompletion(t *testing.T) {
	cfg := testConfig()
	cfg.WorkDuration = 1
	tm := New(cfg)
	tm.Start()

	var completion Completion
	done := false
	for i := 0; i < 60; i++ {
		require.False(t, done, "completed before the countdown ran out")
		completion, done = tm.Tick()
	}

	require.True(t, done)
	assert.Equal(t, PhaseWork, completion.Phase)
	assert.Equal(t, 1, completion.DurationMinutes)
	assert.Equal(t, PhaseShortBreak, completion.NextPhase)

	snap := tm.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, PhaseShortBreak, snap.Phase)
	assert.Equal(t, 5*60, snap.Remaining)
	assert.Equal(t, 1, snap.CompletedCycle)
}

func TestSkipFiresCompletionEarly(t *testing.T) {
	tm := New(testConfig())

	// Skip from idle is not allowed
	_, ok := tm.Skip()
	assert.False(t, ok)

	tm.Start()
	tm.Tick()
	completion, ok := tm.Skip()
	require.True(t, ok)
	assert.Equal(t, PhaseWork, completion.Phase)
	assert.Equal(t, 25, completion.DurationMinutes, "skip records the planned duration, not the elapsed time")

	// Skip from paused is allowed
	tm.Start()
	tm.Pause()
	completion, ok = tm.Skip()
	require.True(t, ok)
	assert.Equal(t, PhaseShortBreak, completion.Phase)
	assert.Equal(t, PhaseWork, completion.NextPhase)
}

// skipPhase runs one full phase via skip and returns its completion.
func skipPhase(t *testing.T, tm *Timer) Completion {
	t.Helper()
	tm.Start()
	completion, ok := tm.Skip()
	require.True(t, ok)
	return completion
}

func TestLongBreakEveryFourthWorkSession(t *testing.T) {
	tm := New(testConfig())

	for i := 1; i <= 4; i++ {
		completion := skipPhase(t, tm)
		assert.Equal(t, PhaseWork, completion.Phase)

		if i == 4 {
			assert.Equal(t, PhaseLongBreak, completion.NextPhase, "4th work session should lead to a long break")
		} else {
			assert.Equal(t, PhaseShortBreak, completion.NextPhase, "work session %d should lead to a short break", i)
		}

		// Finish the break to get back to work
		breakCompletion := skipPhase(t, tm)
		assert.Equal(t, PhaseWork, breakCompletion.NextPhase)
	}

	assert.Equal(t, 4, tm.Snapshot().CompletedCycle)
}

func TestLongBreakDurationUsedForLongBreakPhase(t *testing.T) {
	cfg := testConfig()
	cfg.SessionsUntilLongBreak = 1
	tm := New(cfg)

	completion := skipPhase(t, tm)
	require.Equal(t, PhaseLongBreak, completion.NextPhase)
	assert.Equal(t, 15*60, tm.Snapshot().PlannedTotal)
}

func TestTaskLinkOnlyOnWorkSessions(t *testing.T) {
	tm := New(testConfig())
	tm.SelectTask("656f00000000000000000001")

	workCompletion := skipPhase(t, tm)
	assert.Equal(t, "656f00000000000000000001", workCompletion.TaskID)

	breakCompletion := skipPhase(t, tm)
	assert.Equal(t, PhaseShortBreak, breakCompletion.Phase)
	assert.Empty(t, breakCompletion.TaskID, "break sessions never carry a task link")

	// Clearing the selection drops the link
	tm.SelectTask("")
	workCompletion = skipPhase(t, tm)
	assert.Empty(t, workCompletion.TaskID)
}

func TestAutoStartFlags(t *testing.T) {
	cfg := testConfig()
	cfg.AutoStartBreaks = true
	cfg.AutoStartPomodoros = false
	tm := New(cfg)

	workCompletion := skipPhase(t, tm)
	assert.True(t, workCompletion.AutoStart, "leaving work with autoStartBreaks enabled")

	breakCompletion := skipPhase(t, tm)
	assert.False(t, breakCompletion.AutoStart, "leaving a break with autoStartPomodoros disabled")

	cfg.AutoStartBreaks = false
	cfg.AutoStartPomodoros = true
	tm = New(cfg)

	workCompletion = skipPhase(t, tm)
	assert.False(t, workCompletion.AutoStart)

	breakCompletion = skipPhase(t, tm)
	assert.True(t, breakCompletion.AutoStart)
}

func TestResetRecomputesFromConfig(t *testing.T) {
	tm := New(testConfig())
	tm.Start()
	tm.Tick()
	tm.Tick()
	require.Equal(t, 25*60-2, tm.Snapshot().Remaining)

	tm.Reset()
	snap := tm.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, 25*60, snap.Remaining)
}

func TestUpdateConfigResetsCurrentPhase(t *testing.T) {
	tm := New(testConfig())
	tm.Start()
	tm.Tick()

	cfg := testConfig()
	cfg.WorkDuration = 50
	tm.UpdateConfig(cfg)

	snap := tm.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, 50*60, snap.Remaining)
}

func TestInvalidCadenceClampedToDefault(t *testing.T) {
	cfg := testConfig()
	cfg.SessionsUntilLongBreak = 0
	tm := New(cfg)

	// Four work sessions still produce a long break on the 4th, so the
	// modulo check never divided by zero.
	for i := 1; i <= 4; i++ {
		completion := skipPhase(t, tm)
		if i == 4 {
			assert.Equal(t, PhaseLongBreak, completion.NextPhase)
		} else {
			assert.Equal(t, PhaseShortBreak, completion.NextPhase)
		}
		skipPhase(t, tm)
	}
}
