package repository

import (
	"context"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GoalRepository handles database operations related to rolled-up goal
// progress records.
type GoalRepository struct {
	collection *mongo.Collection
}

// NewGoalRepository creates a new instance of GoalRepository.
func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{
		collection: db.Collection("goals"),
	}
}

// UpsertGoal writes the progress record for one (user, type, period),
// creating it on first rollup.
func (r *GoalRepository) UpsertGoal(ctx context.Context, goal *models.Goal) error {
	filter := bson.M{
		"user_id": goal.UserID,
		"type":    goal.Type,
		"period":  goal.Period,
	}
	update := bson.M{"$set": bson.M{
		"user_id":   goal.UserID,
		"type":      goal.Type,
		"target":    goal.Target,
		"current":   goal.Current,
		"period":    goal.Period,
		"completed": goal.Completed,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"user_id": goal.UserID.Hex(),
			"period":  goal.Period,
		}).Error("Failed to upsert goal record")
		return err
	}

	return nil
}

// GetGoalsByUser fetches a user's goal records, most recent period first.
func (r *GoalRepository) GetGoalsByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Goal, error) {
	var goals []models.Goal

	findOptions := options.Find().
		SetSort(bson.D{{Key: "period", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch goal records")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var goal models.Goal
		if err := cursor.Decode(&goal); err != nil {
			logger.Log.WithError(err).Error("Failed to decode goal record")
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}
