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

// SessionService records completed pomodoro phases and triggers the side
// effects that follow: task counter bumps and achievement evaluation.
type SessionService struct {
	repo               *repository.SessionRepository
	taskRepo           *repository.TaskRepository
	achievementService *AchievementService
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(repo *repository.SessionRepository, taskRepo *repository.TaskRepository, achievementService *AchievementService) *SessionService {
	return &SessionService{
		repo:               repo,
		taskRepo:           taskRepo,
		achievementService: achievementService,
	}
}

// CompleteSession records a finished phase for the user. For work sessions
// with a linked task the task's pomodoro counter is incremented, then the
// achievement catalog is re-evaluated. The three writes are issued
// sequentially and are not transactional: a failure after the session insert
// leaves the session recorded, which is accepted.
func (s *SessionService) CompleteSession(ctx context.Context, userID primitive.ObjectID, sessionType string, durationMinutes int, taskID *primitive.ObjectID) (*models.Session, error) {
	if !models.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("invalid session type: %q", sessionType)
	}
	if durationMinutes < 1 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	// Break sessions never carry a task link.
	if sessionType != models.SessionTypeWork {
		taskID = nil
	}

	now := time.Now().UTC()
	session := &models.Session{
		UserID:      userID,
		Type:        sessionType,
		Duration:    durationMinutes,
		CompletedAt: now,
		Date:        now.Format(models.DateLayout),
		TaskID:      taskID,
	}

	created, err := s.repo.InsertSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to record session: %v", err)
	}

	if taskID != nil && sessionType == models.SessionTypeWork {
		if err := s.taskRepo.IncrementCompletedPomodoros(ctx, *taskID, userID); err != nil {
			logger.Log.WithError(err).WithField("task_id", taskID.Hex()).Error("Failed to credit task after session")
		}
	}

	if err := s.achievementService.Evaluate(ctx, userID); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Achievement evaluation failed after session")
	}

	return created, nil
}

// GetSessions returns all of the user's recorded sessions, newest first.
func (s *SessionService) GetSessions(ctx context.Context, userID primitive.ObjectID) ([]models.Session, error) {
	sessions, err := s.repo.GetSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %v", err)
	}
	return sessions, nil
}
