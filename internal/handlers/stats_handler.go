package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	log "github.com/sirupsen/logrus"
)

// StatsHandler handles HTTP requests for daily and weekly statistics.
type StatsHandler struct {
	Service     *services.StatsService
	GoalService *services.GoalService
}

// NewStatsHandler creates a new instance of StatsHandler.
func NewStatsHandler(service *services.StatsService, goalService *services.GoalService) *StatsHandler {
	return &StatsHandler{
		Service:     service,
		GoalService: goalService,
	}
}

// GetTodayStatsHandler returns the summary of today's sessions.
func (h *StatsHandler) GetTodayStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.Service.GetTodayStats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute today's stats")
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetWeeklyStatsHandler returns the 7-day overview, oldest day first.
func (h *StatsHandler) GetWeeklyStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.Service.GetWeeklyStats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly stats")
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetGoalsHandler returns the user's rolled-up goal progress records.
func (h *StatsHandler) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUserID(w, r)
	if !ok {
		return
	}

	goals, err := h.GoalService.GetRecentGoals(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch goal records")
		http.Error(w, "Failed to fetch goal records", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goals)
}
