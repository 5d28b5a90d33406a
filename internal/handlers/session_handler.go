package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler handles HTTP requests related to completed sessions.
type SessionHandler struct {
	Service *services.SessionService
}

// NewSessionHandler creates a new instance of SessionHandler.
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{Service: service}
}

// CompleteSessionHandler records a phase completed by a client-side timer.
// The server-side WebSocket timer goes through the same service.
func (h *SessionHandler) CompleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Type     string `json:"type"`
		Duration int    `json:"duration"`
		TaskID   string `json:"task_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Warn("Invalid session payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var taskID *primitive.ObjectID
	if payload.TaskID != "" {
		objID, err := primitive.ObjectIDFromHex(payload.TaskID)
		if err != nil {
			log.WithError(err).Warn("Invalid task ID on session completion")
			http.Error(w, "Invalid task ID", http.StatusBadRequest)
			return
		}
		taskID = &objID
	}

	session, err := h.Service.CompleteSession(r.Context(), userID, payload.Type, payload.Duration, taskID)
	if err != nil {
		log.WithError(err).Warn("Failed to record session")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.WithFields(log.Fields{
		"userID":    userID.Hex(),
		"sessionID": session.ID.Hex(),
		"type":      session.Type,
	}).Info("Session recorded")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// GetSessionsHandler lists the logged-in user's recorded sessions.
func (h *SessionHandler) GetSessionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	sessions, err := h.Service.GetSessions(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch sessions")
		http.Error(w, "Failed to fetch sessions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(emptySessions(sessions))
}

// emptySessions keeps a session list JSON-encodable as [] rather than null
// when the user has no recorded sessions yet.
func emptySessions(sessions []models.Session) []models.Session {
	if sessions == nil {
		return []models.Session{}
	}
	return sessions
}
