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

// SettingsRepository handles database operations related to user settings.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// GetSettingsByUser fetches the settings document for a user. Returns nil
// when the user has never saved settings.
func (r *SettingsRepository) GetSettingsByUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error) {
	var settings models.Settings

	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch settings")
		return nil, err
	}

	return &settings, nil
}

// UpsertSettings writes the settings document for a user, creating it on
// first save. Exactly one document per user is maintained by the user_id
// filter.
func (r *SettingsRepository) UpsertSettings(ctx context.Context, settings *models.Settings) error {
	settings.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"user_id":                   settings.UserID,
		"work_duration":             settings.WorkDuration,
		"short_break_duration":      settings.ShortBreakDuration,
		"long_break_duration":       settings.LongBreakDuration,
		"sessions_until_long_break": settings.SessionsUntilLongBreak,
		"sound_enabled":             settings.SoundEnabled,
		"notifications_enabled":     settings.NotificationsEnabled,
		"theme":                     settings.Theme,
		"auto_start_breaks":         settings.AutoStartBreaks,
		"auto_start_pomodoros":      settings.AutoStartPomodoros,
		"daily_goal":                settings.DailyGoal,
		"updated_at":                settings.UpdatedAt,
	}}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": settings.UserID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", settings.UserID.Hex()).Error("Failed to upsert settings")
		return err
	}

	logger.Log.WithField("user_id", settings.UserID.Hex()).Info("Settings saved successfully")
	return nil
}
