package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	log "github.com/sirupsen/logrus"
)

// AchievementHandler handles HTTP requests related to achievements.
type AchievementHandler struct {
	Service *services.AchievementService
}

// NewAchievementHandler creates a new instance of AchievementHandler.
func NewAchievementHandler(service *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{Service: service}
}

// GetAchievementsHandler lists the user's unlocked achievements, newest
// first.
func (h *AchievementHandler) GetAchievementsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	achievements, err := h.Service.GetAchievements(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch achievements")
		http.Error(w, "Failed to fetch achievements", http.StatusInternalServerError)
		return
	}
	if achievements == nil {
		achievements = []models.Achievement{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(achievements)
}
