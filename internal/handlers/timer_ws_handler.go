package handlers

import (
	"net/http"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/timer"
	jwtutil "github.com/nurlan-dev/Pomodoro_Tracker/pkg/jwt"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// autoStartDelay is the pause between a completed phase and the automatic
// start of the next one when auto-start is enabled.
const autoStartDelay = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TimerCommand is a client message on the timer socket.
type TimerCommand struct {
	Action string `json:"action"` // "start", "pause", "reset", "skip", "select_task", "reload_settings", "state"
	TaskID string `json:"task_id,omitempty"`
}

// TimerEvent is a server message on the timer socket.
type TimerEvent struct {
	Type      string          `json:"type"` // "state", "tick", "phase_complete", "error"
	Snapshot  *timer.Snapshot `json:"snapshot,omitempty"`
	Phase     string          `json:"phase,omitempty"`
	NextPhase string          `json:"next_phase,omitempty"`
	AutoStart bool            `json:"auto_start,omitempty"`
	Message   string          `json:"message,omitempty"`
}

// TimerHandler hosts one timer state machine per WebSocket connection.
type TimerHandler struct {
	SessionService  *services.SessionService
	SettingsService *services.SettingsService
	JWTSecret       string
}

// NewTimerHandler creates a new instance of TimerHandler.
func NewTimerHandler(sessionService *services.SessionService, settingsService *services.SettingsService, jwtSecret string) *TimerHandler {
	return &TimerHandler{
		SessionService:  sessionService,
		SettingsService: settingsService,
		JWTSecret:       jwtSecret,
	}
}

// TimerWebSocketHandler upgrades the connection and runs the timer loop.
// Every tab or device gets its own independent timer instance; the database
// is the only state shared between them.
func (h *TimerHandler) TimerWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	claims, err := jwtutil.ValidateToken(token, h.JWTSecret)
	if err != nil {
		log.WithError(err).Warn("Timer socket auth failed")
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("Timer socket upgrade failed")
		return
	}
	defer conn.Close()

	log.WithField("userID", claims.UserID).Info("Timer socket connected")
	defer log.WithField("userID", claims.UserID).Info("Timer socket disconnected")

	settings, err := h.SettingsService.GetSettings(r.Context(), userID)
	if err != nil {
		_ = conn.WriteJSON(TimerEvent{Type: "error", Message: "Failed to load settings"})
		return
	}
	t := timer.New(timer.ConfigFromSettings(settings))

	// Reader goroutine feeds commands into the loop; closing the channel
	// ends the loop when the client goes away.
	commands := make(chan TimerCommand)
	go func() {
		defer close(commands)
		for {
			var cmd TimerCommand
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}
			commands <- cmd
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	// All timer mutations and all writes to the socket happen on this
	// goroutine, so ticks and commands are strictly serialized.
	var autoStart <-chan time.Time
	snapshot := t.Snapshot()
	_ = conn.WriteJSON(TimerEvent{Type: "state", Snapshot: &snapshot})

	for {
		select {
		case cmd, open := <-commands:
			if !open {
				return
			}
			switch cmd.Action {
			case "start":
				autoStart = nil
				t.Start()
			case "pause":
				t.Pause()
			case "reset":
				autoStart = nil
				t.Reset()
			case "skip":
				if completion, ok := t.Skip(); ok {
					autoStart = h.handleCompletion(r, conn, userID, completion)
				}
			case "select_task":
				t.SelectTask(cmd.TaskID)
			case "reload_settings":
				settings, err := h.SettingsService.GetSettings(r.Context(), userID)
				if err != nil {
					_ = conn.WriteJSON(TimerEvent{Type: "error", Message: "Failed to reload settings"})
					break
				}
				t.UpdateConfig(timer.ConfigFromSettings(settings))
			case "state":
				// state snapshot is sent below for every command
			default:
				_ = conn.WriteJSON(TimerEvent{Type: "error", Message: "Unknown action: " + cmd.Action})
				continue
			}
			snapshot := t.Snapshot()
			_ = conn.WriteJSON(TimerEvent{Type: "state", Snapshot: &snapshot})

		case <-ticker.C:
			completion, done := t.Tick()
			if done {
				autoStart = h.handleCompletion(r, conn, userID, completion)
				continue
			}
			if t.Snapshot().State == timer.StateRunning.String() {
				snapshot := t.Snapshot()
				_ = conn.WriteJSON(TimerEvent{Type: "tick", Snapshot: &snapshot})
			}

		case <-autoStart:
			autoStart = nil
			t.Start()
			snapshot := t.Snapshot()
			_ = conn.WriteJSON(TimerEvent{Type: "state", Snapshot: &snapshot})
		}
	}
}

// handleCompletion persists the finished phase and notifies the client. The
// phase transition already happened inside the timer and is never rolled
// back: persistence failures surface as a transient error event only.
func (h *TimerHandler) handleCompletion(r *http.Request, conn *websocket.Conn, userID primitive.ObjectID, completion timer.Completion) <-chan time.Time {
	var taskID *primitive.ObjectID
	if completion.TaskID != "" {
		objID, err := primitive.ObjectIDFromHex(completion.TaskID)
		if err == nil {
			taskID = &objID
		}
	}

	_, err := h.SessionService.CompleteSession(r.Context(), userID, completion.Phase, completion.DurationMinutes, taskID)
	if err != nil {
		log.WithError(err).WithField("userID", userID.Hex()).Error("Failed to persist completed phase")
		_ = conn.WriteJSON(TimerEvent{Type: "error", Message: "Failed to save session, timer continues"})
	}

	_ = conn.WriteJSON(TimerEvent{
		Type:      "phase_complete",
		Phase:     completion.Phase,
		NextPhase: completion.NextPhase,
		AutoStart: completion.AutoStart,
	})

	if completion.AutoStart {
		return time.After(autoStartDelay)
	}
	return nil
}
