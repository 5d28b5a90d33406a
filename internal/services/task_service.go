package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different user. The two cases share one error so existence of other users'
// tasks is never revealed.
var ErrTaskNotFound = errors.New("task not found")

// TaskService encapsulates the business logic for tasks.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask validates and stores a new task for the user.
func (s *TaskService) CreateTask(ctx context.Context, userID primitive.ObjectID, task *models.Task) (*models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if task.EstimatedPomodoros < 1 {
		return nil, fmt.Errorf("estimated pomodoros must be at least 1")
	}
	if !models.AllowedPriorities[task.Priority] {
		return nil, fmt.Errorf("invalid priority: %q", task.Priority)
	}

	task.UserID = userID
	task.Completed = false
	task.CompletedPomodoros = 0

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	logger.Log.WithField("task_id", created.ID.Hex()).Info("Task created in service layer")
	return created, nil
}

// GetTask returns the user's task with the given id.
func (s *TaskService) GetTask(ctx context.Context, userID primitive.ObjectID, id string) (*models.Task, error) {
	task, err := s.resolveOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasks lists the user's tasks, optionally filtered by completion state.
func (s *TaskService) GetTasks(ctx context.Context, userID primitive.ObjectID, completed *bool) ([]models.Task, error) {
	tasks, err := s.repo.GetTasksByUser(ctx, userID, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %v", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update to the user's task.
func (s *TaskService) UpdateTask(ctx context.Context, userID primitive.ObjectID, id string, update *models.TaskUpdate) (*models.Task, error) {
	task, err := s.resolveOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, fmt.Errorf("task title cannot be empty")
		}
		fields["title"] = title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Completed != nil {
		fields["completed"] = *update.Completed
	}
	if update.EstimatedPomodoros != nil {
		if *update.EstimatedPomodoros < 1 {
			return nil, fmt.Errorf("estimated pomodoros must be at least 1")
		}
		fields["estimated_pomodoros"] = *update.EstimatedPomodoros
	}
	if update.Priority != nil {
		if !models.AllowedPriorities[*update.Priority] {
			return nil, fmt.Errorf("invalid priority: %q", *update.Priority)
		}
		fields["priority"] = *update.Priority
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.DueDate != nil {
		fields["due_date"] = *update.DueDate
	}

	if len(fields) == 0 {
		return task, nil
	}

	if err := s.repo.UpdateTask(ctx, task.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update task: %v", err)
	}

	return s.repo.GetTaskByID(ctx, task.ID)
}

// DeleteTask removes the user's task.
func (s *TaskService) DeleteTask(ctx context.Context, userID primitive.ObjectID, id string) error {
	task, err := s.resolveOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTask(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %v", err)
	}

	return nil
}

// resolveOwned fetches a task and verifies ownership. Malformed ids, missing
// tasks and foreign tasks all collapse into ErrTaskNotFound.
func (s *TaskService) resolveOwned(ctx context.Context, userID primitive.ObjectID, id string) (*models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	task, err := s.repo.GetTaskByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %v", err)
	}

	owned, err := ownedTask(task, userID)
	if err != nil && task != nil {
		logger.Log.WithFields(map[string]interface{}{
			"task_id": id,
			"user_id": userID.Hex(),
		}).Warn("User attempted to access another user's task")
	}
	return owned, err
}

// ownedTask collapses a missing task and a task owned by someone else into
// the same ErrTaskNotFound, so callers can never tell the cases apart.
func ownedTask(task *models.Task, userID primitive.ObjectID) (*models.Task, error) {
	if task == nil || task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
