package services

import (
	"context"
	"fmt"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalService serves the rolled-up goal progress records written by the
// background rollup job.
type GoalService struct {
	repo *repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(repo *repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GetRecentGoals lists the user's most recent goal records.
func (s *GoalService) GetRecentGoals(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	goals, err := s.repo.GetGoalsByUser(ctx, userID, 30)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal records: %v", err)
	}
	return goals, nil
}

// RecordDailyGoal upserts the daily progress record for one user and day.
func (s *GoalService) RecordDailyGoal(ctx context.Context, userID primitive.ObjectID, date string, target, current int) error {
	goal := &models.Goal{
		UserID:    userID,
		Type:      models.GoalTypeDaily,
		Target:    target,
		Current:   current,
		Period:    date,
		Completed: current >= target,
	}
	return s.repo.UpsertGoal(ctx, goal)
}
