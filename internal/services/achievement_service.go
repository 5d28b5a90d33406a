package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementService evaluates the milestone catalog against a user's
// session history and unlocks achievements.
type AchievementService struct {
	repo        *repository.AchievementRepository
	sessionRepo *repository.SessionRepository
}

// NewAchievementService creates a new instance of AchievementService.
func NewAchievementService(repo *repository.AchievementRepository, sessionRepo *repository.SessionRepository) *AchievementService {
	return &AchievementService{
		repo:        repo,
		sessionRepo: sessionRepo,
	}
}

// Evaluate re-checks every catalog entry for the user and unlocks any whose
// predicate holds. Unlocks are idempotent (guarded by an existence check)
// and never revoked, so running this after every completed session is safe.
func (s *AchievementService) Evaluate(ctx context.Context, userID primitive.ObjectID) error {
	today := time.Now().UTC().Format(models.DateLayout)

	totalWork, err := s.sessionRepo.CountWorkSessions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count work sessions: %v", err)
	}

	todayWork, err := s.sessionRepo.CountWorkSessionsByDate(ctx, userID, today)
	if err != nil {
		return fmt.Errorf("failed to count today's work sessions: %v", err)
	}

	unlocked := make(map[string]bool)
	for _, def := range models.AchievementCatalog {
		existing, err := s.repo.FindAchievement(ctx, userID, def.Type)
		if err != nil {
			return fmt.Errorf("failed to look up achievement %s: %v", def.Type, err)
		}
		if existing != nil {
			unlocked[def.Type] = true
		}
	}

	for _, def := range pendingUnlocks(todayWork, totalWork, unlocked) {
		achievement := &models.Achievement{
			UserID:      userID,
			Type:        def.Type,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			UnlockedAt:  time.Now(),
		}
		if err := s.repo.InsertAchievement(ctx, achievement); err != nil {
			return fmt.Errorf("failed to unlock achievement %s: %v", def.Type, err)
		}

		logger.Log.WithFields(map[string]interface{}{
			"user_id": userID.Hex(),
			"type":    def.Type,
		}).Info("Achievement unlocked in service layer")
	}

	return nil
}

// pendingUnlocks is the pure decision step of evaluation: given the user's
// work-session counts and the set of already-unlocked keys, it returns the
// catalog entries to insert, in catalog order. Entries whose key is present
// in unlocked are never returned, which makes repeated evaluation over
// identical history a no-op.
func pendingUnlocks(todayWork, totalWork int, unlocked map[string]bool) []models.AchievementDef {
	var pending []models.AchievementDef
	for _, def := range models.AchievementCatalog {
		if !def.Unlocked(todayWork, totalWork) {
			continue
		}
		if unlocked[def.Type] {
			continue
		}
		pending = append(pending, def)
	}
	return pending
}

// GetAchievements returns the user's unlocked achievements, newest first.
func (s *AchievementService) GetAchievements(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error) {
	achievements, err := s.repo.GetAchievementsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %v", err)
	}
	return achievements, nil
}
