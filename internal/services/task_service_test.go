package services

import (
	"context"
	"testing"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validation rejections happen before any repository call, so these tests run
// against a service with no database behind it.

func TestCreateTaskRejectsInvalidInput(t *testing.T) {
	service := NewTaskService(nil)
	userID := primitive.NewObjectID()

	tests := []struct {
		name string
		task models.Task
	}{
		{"empty title", models.Task{Title: "  ", EstimatedPomodoros: 1, Priority: "low"}},
		{"zero estimate", models.Task{Title: "Write report", EstimatedPomodoros: 0, Priority: "low"}},
		{"unknown priority", models.Task{Title: "Write report", EstimatedPomodoros: 1, Priority: "urgent"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := tc.task
			_, err := service.CreateTask(context.Background(), userID, &task)
			assert.Error(t, err)
		})
	}
}

func TestTaskLookupWithMalformedIDIsNotFound(t *testing.T) {
	service := NewTaskService(nil)
	userID := primitive.NewObjectID()

	_, err := service.GetTask(context.Background(), userID, "not-an-object-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = service.DeleteTask(context.Background(), userID, "not-an-object-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = service.UpdateTask(context.Background(), userID, "not-an-object-id", &models.TaskUpdate{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestOwnedTaskRejectsForeignOwner(t *testing.T) {
	ownerA := primitive.NewObjectID()
	ownerB := primitive.NewObjectID()
	task := &models.Task{
		ID:                 primitive.NewObjectID(),
		UserID:             ownerA,
		Title:              "Write report",
		EstimatedPomodoros: 3,
		Priority:           "high",
	}

	// Another user resolving owner A's task gets the same error as for a
	// task that does not exist, whatever fields the update would carry.
	_, err := ownedTask(task, ownerB)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = ownedTask(nil, ownerB)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestOwnedTaskReturnsOwnersTask(t *testing.T) {
	owner := primitive.NewObjectID()
	task := &models.Task{ID: primitive.NewObjectID(), UserID: owner, Title: "Write report"}

	resolved, err := ownedTask(task, owner)
	assert.NoError(t, err)
	assert.Equal(t, task, resolved)
}

func TestCompleteSessionRejectsInvalidInput(t *testing.T) {
	service := NewSessionService(nil, nil, nil)
	userID := primitive.NewObjectID()

	_, err := service.CompleteSession(context.Background(), userID, "nap", 25, nil)
	assert.Error(t, err, "unknown session type")

	_, err = service.CompleteSession(context.Background(), userID, models.SessionTypeWork, 0, nil)
	assert.Error(t, err, "non-positive duration")
}
