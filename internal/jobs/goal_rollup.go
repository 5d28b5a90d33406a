package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/services"
	"github.com/sirupsen/logrus"
)

// GoalRollup materializes per-day goal progress records from completed
// sessions. It runs from the cron scheduler.
type GoalRollup struct {
	UserRepo        *repository.UserRepository
	SessionRepo     *repository.SessionRepository
	SettingsService *services.SettingsService
	GoalService     *services.GoalService
}

// NewGoalRollup creates a new instance of GoalRollup.
func NewGoalRollup(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, settingsService *services.SettingsService, goalService *services.GoalService) *GoalRollup {
	return &GoalRollup{
		UserRepo:        userRepo,
		SessionRepo:     sessionRepo,
		SettingsService: settingsService,
		GoalService:     goalService,
	}
}

// RunDailyRollup upserts the daily goal record of every user for the given
// calendar day. Users with no sessions that day are skipped.
func (g *GoalRollup) RunDailyRollup(ctx context.Context, date string) error {
	users, err := g.UserRepo.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %v", err)
	}

	for _, user := range users {
		workSessions, err := g.SessionRepo.CountWorkSessionsByDate(ctx, user.ID, date)
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID.Hex()).Error("Rollup failed to count sessions")
			continue
		}
		if workSessions == 0 {
			continue
		}

		settings, err := g.SettingsService.GetSettings(ctx, user.ID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID.Hex()).Error("Rollup failed to load settings")
			continue
		}

		if err := g.GoalService.RecordDailyGoal(ctx, user.ID, date, settings.DailyGoal, workSessions); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID.Hex()).Error("Rollup failed to record goal")
			continue
		}
	}

	logrus.WithField("date", date).Info("Daily goal rollup finished")
	return nil
}

// RunForToday rolls up the current day.
func (g *GoalRollup) RunForToday(ctx context.Context) error {
	return g.RunDailyRollup(ctx, time.Now().UTC().Format(models.DateLayout))
}

// RunForYesterday rolls up the previous day, used by the nightly run to
// finalize the day that just ended.
func (g *GoalRollup) RunForYesterday(ctx context.Context) error {
	return g.RunDailyRollup(ctx, time.Now().UTC().AddDate(0, 0, -1).Format(models.DateLayout))
}
