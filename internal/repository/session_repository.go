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

// SessionRepository handles database operations related to completed
// pomodoro sessions. Sessions are insert-only.
type SessionRepository struct {
	collection *mongo.Collection
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{
		collection: db.Collection("sessions"),
	}
}

// InsertSession records a completed session.
func (r *SessionRepository) InsertSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert session")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted session ID")
		return nil, err
	}
	session.ID = insertedID

	logger.Log.WithFields(map[string]interface{}{
		"session_id": session.ID.Hex(),
		"user_id":    session.UserID.Hex(),
		"type":       session.Type,
	}).Info("Session recorded successfully")
	return session, nil
}

// GetSessionsByUser fetches all sessions for a user, newest first.
func (r *SessionRepository) GetSessionsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Session, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	return r.findSessions(ctx, bson.M{"user_id": userID}, findOptions)
}

// GetSessionsByUserAndDate fetches a user's sessions for one calendar day.
func (r *SessionRepository) GetSessionsByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]models.Session, error) {
	return r.findSessions(ctx, bson.M{"user_id": userID, "date": date}, nil)
}

// GetSessionsByUserSince fetches a user's sessions completed at or after the
// given time.
func (r *SessionRepository) GetSessionsByUserSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.Session, error) {
	filter := bson.M{
		"user_id":      userID,
		"completed_at": bson.M{"$gte": since},
	}
	return r.findSessions(ctx, filter, nil)
}

// CountWorkSessions returns the user's all-time completed work session count.
func (r *SessionRepository) CountWorkSessions(ctx context.Context, userID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"type":    models.SessionTypeWork,
	})
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to count work sessions")
		return 0, err
	}
	return int(count), nil
}

// CountWorkSessionsByDate returns the user's completed work session count for
// one calendar day.
func (r *SessionRepository) CountWorkSessionsByDate(ctx context.Context, userID primitive.ObjectID, date string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id": userID,
		"type":    models.SessionTypeWork,
		"date":    date,
	})
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to count work sessions by date")
		return 0, err
	}
	return int(count), nil
}

func (r *SessionRepository) findSessions(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Session, error) {
	var sessions []models.Session

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch sessions")
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var session models.Session
		if err := cursor.Decode(&session); err != nil {
			logger.Log.WithError(err).Error("Failed to decode session")
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}
