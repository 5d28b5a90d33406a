package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/middleware"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsHandler handles HTTP requests related to timer settings.
type SettingsHandler struct {
	Service *services.SettingsService
}

// NewSettingsHandler creates a new instance of SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: service}
}

// GetSettingsHandler returns the logged-in user's settings with defaults
// applied.
func (h *SettingsHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	settings, err := h.Service.GetSettings(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch settings")
		http.Error(w, "Failed to fetch settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// UpdateSettingsHandler validates and saves the logged-in user's settings.
func (h *SettingsHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.WithError(err).Warn("Invalid settings payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updated, err := h.Service.UpdateSettings(r.Context(), userID, &settings)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSettings) {
			log.WithError(err).Warn("Rejected settings update")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to update settings")
		http.Error(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	log.WithField("userID", userID.Hex()).Info("Settings updated successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// ExportSettingsHandler serves the user's settings as a downloadable JSON
// document.
func (h *SettingsHandler) ExportSettingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	settings, err := h.Service.GetSettings(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to export settings")
		http.Error(w, "Failed to export settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="pomodoro-settings.json"`)
	json.NewEncoder(w).Encode(settings)
}

// ImportSettingsHandler accepts a previously exported settings document and
// saves it after the usual validation.
func (h *SettingsHandler) ImportSettingsHandler(w http.ResponseWriter, r *http.Request) {
	h.UpdateSettingsHandler(w, r)
}

// authenticatedUserID resolves the logged-in user's ObjectID from the JWT
// claims, writing the error response itself when the request is not usable.
func authenticatedUserID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		log.Warn("Unauthorized access attempt")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		log.WithError(err).Error("Invalid user ID in token claims")
		http.Error(w, "Invalid user ID", http.StatusInternalServerError)
		return primitive.NilObjectID, false
	}

	return userID, true
}
