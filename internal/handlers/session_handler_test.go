package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmptySessionsEncodesAsEmptyArray(t *testing.T) {
	body, err := json.Marshal(emptySessions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestEmptySessionsPreservesExistingList(t *testing.T) {
	sessions := []models.Session{
		{
			ID:          primitive.NewObjectID(),
			UserID:      primitive.NewObjectID(),
			Type:        models.SessionTypeWork,
			Duration:    25,
			CompletedAt: time.Now().UTC(),
		},
	}

	assert.Equal(t, sessions, emptySessions(sessions))
}
