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

// AchievementRepository handles database operations related to achievements.
type AchievementRepository struct {
	collection *mongo.Collection
}

// NewAchievementRepository creates a new instance of AchievementRepository.
func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{
		collection: db.Collection("achievements"),
	}
}

// GetAchievementsByUser fetches all achievements for a user, newest first.
func (r *AchievementRepository) GetAchievementsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Achievement, error) {
	var achievements []models.Achievement

	findOptions := options.Find().SetSort(bson.D{{Key: "unlocked_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch achievements")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var achievement models.Achievement
		if err := cursor.Decode(&achievement); err != nil {
			logger.Log.WithError(err).Error("Failed to decode achievement")
			return nil, err
		}
		achievements = append(achievements, achievement)
	}

	return achievements, nil
}

// FindAchievement looks up one achievement by (user, type). Returns nil when
// the achievement has not been unlocked.
func (r *AchievementRepository) FindAchievement(ctx context.Context, userID primitive.ObjectID, achievementType string) (*models.Achievement, error) {
	var achievement models.Achievement

	err := r.collection.FindOne(ctx, bson.M{
		"user_id": userID,
		"type":    achievementType,
	}).Decode(&achievement)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"user_id": userID.Hex(),
			"type":    achievementType,
		}).Error("Failed to find achievement")
		return nil, err
	}

	return &achievement, nil
}

// InsertAchievement records a newly unlocked achievement.
func (r *AchievementRepository) InsertAchievement(ctx context.Context, achievement *models.Achievement) error {
	result, err := r.collection.InsertOne(ctx, achievement)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert achievement")
		return err
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		achievement.ID = insertedID
	}

	logger.Log.WithFields(map[string]interface{}{
		"user_id": achievement.UserID.Hex(),
		"type":    achievement.Type,
	}).Info("Achievement unlocked")
	return nil
}
