package repository

import (
	"context"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository handles database operations related to tasks.
type TaskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{
		collection: db.Collection("tasks"),
	}
}

// CreateTask inserts a new task into the database.
func (r *TaskRepository) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert task")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted task ID")
		return nil, err
	}
	task.ID = insertedID

	logger.Log.WithField("task_id", task.ID.Hex()).Info("Task created successfully")
	return task, nil
}

// GetTaskByID fetches a task by its ID. Returns nil when no task exists.
func (r *TaskRepository) GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id.Hex()).Error("Failed to find task by ID")
		return nil, err
	}

	return &task, nil
}

// GetTasksByUser fetches a user's tasks, newest first, optionally filtered by
// completion state.
func (r *TaskRepository) GetTasksByUser(ctx context.Context, userID primitive.ObjectID, completed *bool) ([]models.Task, error) {
	var tasks []models.Task

	filter := bson.M{"user_id": userID}
	if completed != nil {
		filter["completed"] = *completed
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch tasks")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var task models.Task
		if err := cursor.Decode(&task); err != nil {
			logger.Log.WithError(err).Error("Failed to decode task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task.
func (r *TaskRepository) UpdateTask(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id.Hex()).Error("Failed to update task")
		return err
	}

	logger.Log.WithField("task_id", id.Hex()).Info("Task updated successfully")
	return nil
}

// DeleteTask removes a task from the database.
func (r *TaskRepository) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id.Hex()).Error("Failed to delete task")
		return err
	}

	logger.Log.WithField("task_id", id.Hex()).Info("Task deleted successfully")
	return nil
}

// IncrementCompletedPomodoros bumps the task's pomodoro counter by one. The
// filter includes the owner so a session can never credit another user's
// task. A missing match is not an error: the session stays recorded either
// way.
func (r *TaskRepository) IncrementCompletedPomodoros(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$inc": bson.M{"completed_pomodoros": 1}},
	)
	if err != nil {
		logger.Log.WithError(err).WithField("task_id", id.Hex()).Error("Failed to increment completed pomodoros")
		return err
	}

	if result.MatchedCount == 0 {
		logger.Log.WithFields(map[string]interface{}{
			"task_id": id.Hex(),
			"user_id": userID.Hex(),
		}).Warn("No owned task matched for pomodoro increment")
		return nil
	}

	logger.Log.WithField("task_id", id.Hex()).Info("Task pomodoro count incremented")
	return nil
}
