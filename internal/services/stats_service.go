package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsService derives read-only daily and weekly summaries from stored
// sessions. It holds no state of its own.
type StatsService struct {
	sessionRepo  *repository.SessionRepository
	settingsRepo *repository.SettingsRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(sessionRepo *repository.SessionRepository, settingsRepo *repository.SettingsRepository) *StatsService {
	return &StatsService{
		sessionRepo:  sessionRepo,
		settingsRepo: settingsRepo,
	}
}

// GetTodayStats summarizes the user's sessions for the current day.
func (s *StatsService) GetTodayStats(ctx context.Context, userID primitive.ObjectID) (*models.TodayStats, error) {
	now := time.Now().UTC()

	sessions, err := s.sessionRepo.GetSessionsByUserAndDate(ctx, userID, now.Format(models.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's sessions: %v", err)
	}

	dailyGoal := models.DefaultDailyGoal
	settings, err := s.settingsRepo.GetSettingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %v", err)
	}
	if settings != nil && settings.DailyGoal > 0 {
		dailyGoal = settings.DailyGoal
	}

	stats := computeTodayStats(sessions, dailyGoal)
	return &stats, nil
}

// GetWeeklyStats returns one bucket per day for the last 7 calendar days,
// oldest first, counting work sessions only.
func (s *StatsService) GetWeeklyStats(ctx context.Context, userID primitive.ObjectID) ([]models.DailyStat, error) {
	now := time.Now().UTC()

	sessions, err := s.sessionRepo.GetSessionsByUserSince(ctx, userID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly sessions: %v", err)
	}

	return computeWeeklyStats(sessions, now), nil
}

// computeTodayStats is the pure aggregation over one day's sessions.
func computeTodayStats(sessions []models.Session, dailyGoal int) models.TodayStats {
	stats := models.TodayStats{
		DailyGoal:     dailyGoal,
		TotalSessions: len(sessions),
	}

	for _, session := range sessions {
		stats.TotalMinutes += session.Duration
		if session.Type == models.SessionTypeWork {
			stats.WorkSessions++
		}
	}

	progress := float64(stats.WorkSessions) / float64(dailyGoal) * 100
	if progress > 100 {
		progress = 100
	}
	stats.GoalProgress = progress

	return stats
}

// computeWeeklyStats buckets work sessions into a fixed 7-day window ending
// today. Sessions whose date matches no bucket (clock skew, timezone edges)
// are dropped silently.
func computeWeeklyStats(sessions []models.Session, now time.Time) []models.DailyStat {
	buckets := make([]models.DailyStat, 0, 7)
	index := make(map[string]int, 7)

	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(models.DateLayout)
		index[date] = len(buckets)
		buckets = append(buckets, models.DailyStat{Date: date})
	}

	for _, session := range sessions {
		if session.Type != models.SessionTypeWork {
			continue
		}
		i, ok := index[session.Date]
		if !ok {
			continue
		}
		buckets[i].Sessions++
		buckets[i].Minutes += session.Duration
	}

	return buckets
}
