package timer

import (
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
)

// State is the run state of a timer.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Phase identifies the current segment of the pomodoro cycle. Values match
// the session type strings stored in the database.
type Phase = string

const (
	PhaseWork       Phase = models.SessionTypeWork
	PhaseShortBreak Phase = models.SessionTypeBreak
	PhaseLongBreak  Phase = models.SessionTypeLongBreak
)

// Config carries the settings subset the timer needs. Durations are minutes.
type Config struct {
	WorkDuration           int
	ShortBreakDuration     int
	LongBreakDuration      int
	SessionsUntilLongBreak int
	AutoStartBreaks        bool
	AutoStartPomodoros     bool
}

// ConfigFromSettings builds a timer config from a user's settings.
func ConfigFromSettings(s *models.Settings) Config {
	return Config{
		WorkDuration:           s.WorkDuration,
		ShortBreakDuration:     s.ShortBreakDuration,
		LongBreakDuration:      s.LongBreakDuration,
		SessionsUntilLongBreak: s.SessionsUntilLongBreak,
		AutoStartBreaks:        s.AutoStartBreaks,
		AutoStartPomodoros:     s.AutoStartPomodoros,
	}
}

// Completion describes a finished phase, emitted when the countdown reaches
// zero or the phase is skipped.
type Completion struct {
	Phase           Phase
	DurationMinutes int    // planned duration, not wall-clock elapsed
	TaskID          string // empty unless the phase was work and a task was selected
	NextPhase       Phase
	AutoStart       bool // whether the next phase should start after the auto-start delay
}

// Snapshot is a read-only view of the timer for clients.
type Snapshot struct {
	State          string `json:"state"`
	Phase          Phase  `json:"phase"`
	Remaining      int    `json:"remaining"`
	PlannedTotal   int    `json:"planned_total"`
	CompletedCycle int    `json:"completed_cycles"`
	TaskID         string `json:"task_id,omitempty"`
}

// Timer is the pomodoro session state machine. It is not safe for concurrent
// use: the owning controller must serialize commands and ticks through a
// single goroutine.
type Timer struct {
	cfg          Config
	state        State
	phase        Phase
	remaining    int // seconds
	plannedTotal int // seconds, fixed at phase entry
	cycleCount   int // work sessions completed since the timer was created
	taskID       string
}

// New creates an idle timer positioned at the start of a work phase.
// SessionsUntilLongBreak below 1 is clamped to the default so the long-break
// cadence check can never divide by zero; the settings service rejects such
// values before they reach storage.
func New(cfg Config) *Timer {
	if cfg.SessionsUntilLongBreak < 1 {
		cfg.SessionsUntilLongBreak = models.DefaultSessionsUntilLongBreak
	}
	t := &Timer{
		cfg:   cfg,
		state: StateIdle,
		phase: PhaseWork,
	}
	t.enterPhase(PhaseWork)
	return t
}

// Start begins or resumes the countdown. Reports whether the state changed.
func (t *Timer) Start() bool {
	if t.state == StateRunning {
		return false
	}
	t.state = StateRunning
	return true
}

// Pause suspends a running countdown. Reports whether the state changed.
func (t *Timer) Pause() bool {
	if t.state != StateRunning {
		return false
	}
	t.state = StatePaused
	return true
}

// Reset returns the timer to idle and recomputes the countdown for the
// current phase from the current config.
func (t *Timer) Reset() {
	t.state = StateIdle
	t.enterPhase(t.phase)
}

// Skip ends the current phase immediately, as if the countdown had reached
// zero. Allowed while running or paused.
func (t *Timer) Skip() (Completion, bool) {
	if t.state == StateIdle {
		return Completion{}, false
	}
	return t.complete(), true
}

// Tick advances the countdown by one second. Ticks are ignored unless the
// timer is running. When the countdown reaches zero the phase completes and
// the returned Completion describes it.
func (t *Timer) Tick() (Completion, bool) {
	if t.state != StateRunning {
		return Completion{}, false
	}

	t.remaining--
	if t.remaining > 0 {
		return Completion{}, false
	}
	return t.complete(), true
}

// SelectTask links the given task to subsequent work sessions. An empty id
// clears the selection.
func (t *Timer) SelectTask(id string) {
	t.taskID = id
}

// UpdateConfig swaps in new settings and resets the current phase countdown.
func (t *Timer) UpdateConfig(cfg Config) {
	if cfg.SessionsUntilLongBreak < 1 {
		cfg.SessionsUntilLongBreak = models.DefaultSessionsUntilLongBreak
	}
	t.cfg = cfg
	t.Reset()
}

// Snapshot returns the current externally visible state.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		State:          t.state.String(),
		Phase:          t.phase,
		Remaining:      t.remaining,
		PlannedTotal:   t.plannedTotal,
		CompletedCycle: t.cycleCount,
		TaskID:         t.taskID,
	}
}

// complete finishes the current phase: it builds the Completion record,
// advances to the next phase and leaves the timer idle. The auto-start
// decision is reported on the Completion; actually starting after the delay
// is the controller's job.
func (t *Timer) complete() Completion {
	finished := t.phase

	c := Completion{
		Phase:           finished,
		DurationMinutes: (t.plannedTotal + 30) / 60,
	}
	if finished == PhaseWork {
		c.TaskID = t.taskID
	}

	if finished == PhaseWork {
		t.cycleCount++
		if t.cycleCount%t.cfg.SessionsUntilLongBreak == 0 {
			c.NextPhase = PhaseLongBreak
		} else {
			c.NextPhase = PhaseShortBreak
		}
		c.AutoStart = t.cfg.AutoStartBreaks
	} else {
		c.NextPhase = PhaseWork
		c.AutoStart = t.cfg.AutoStartPomodoros
	}

	t.state = StateIdle
	t.enterPhase(c.NextPhase)
	return c
}

// enterPhase sets phase, plannedTotal and remaining from the config.
func (t *Timer) enterPhase(phase Phase) {
	t.phase = phase
	switch phase {
	case PhaseShortBreak:
		t.plannedTotal = t.cfg.ShortBreakDuration * 60
	case PhaseLongBreak:
		t.plannedTotal = t.cfg.LongBreakDuration * 60
	default:
		t.plannedTotal = t.cfg.WorkDuration * 60
	}
	t.remaining = t.plannedTotal
}
