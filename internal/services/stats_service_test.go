package services

import (
	"testing"
	"time"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workSession(date string, duration int) models.Session {
	return models.Session{Type: models.SessionTypeWork, Date: date, Duration: duration}
}

func breakSession(date string, duration int) models.Session {
	return models.Session{Type: models.SessionTypeBreak, Date: date, Duration: duration}
}

func TestComputeTodayStats(t *testing.T) {
	sessions := []models.Session{
		workSession("2026-09-01", 25),
		workSession("2026-09-01", 25),
		workSession("2026-09-01", 25),
		workSession("2026-09-01", 25),
		workSession("2026-09-01", 25),
		breakSession("2026-09-01", 5),
	}

	stats := computeTodayStats(sessions, 8)

	assert.Equal(t, 5, stats.WorkSessions)
	assert.Equal(t, 6, stats.TotalSessions)
	assert.Equal(t, 130, stats.TotalMinutes, "break minutes count toward the total")
	assert.Equal(t, 8, stats.DailyGoal)
	assert.InDelta(t, 62.5, stats.GoalProgress, 0.0001)
}

func TestComputeTodayStatsClampsProgress(t *testing.T) {
	var sessions []models.Session
	for i := 0; i < 10; i++ {
		sessions = append(sessions, workSession("2026-09-01", 25))
	}

	stats := computeTodayStats(sessions, 8)
	assert.Equal(t, 100.0, stats.GoalProgress)
}

func TestComputeTodayStatsEmptyDay(t *testing.T) {
	stats := computeTodayStats(nil, 8)

	assert.Equal(t, 0, stats.WorkSessions)
	assert.Equal(t, 0, stats.TotalMinutes)
	assert.Equal(t, 0.0, stats.GoalProgress)
}

func TestComputeWeeklyStatsAlwaysSevenBucketsOldestFirst(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	buckets := computeWeeklyStats(nil, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2026-08-26", buckets[0].Date)
	assert.Equal(t, "2026-09-01", buckets[6].Date)
	for _, bucket := range buckets {
		assert.Zero(t, bucket.Sessions)
		assert.Zero(t, bucket.Minutes)
	}
}

func TestComputeWeeklyStatsBucketsWorkSessions(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		workSession("2026-08-26", 25), // oldest bucket
		workSession("2026-09-01", 25), // today
		workSession("2026-09-01", 50),
		breakSession("2026-09-01", 5), // breaks are excluded
	}

	buckets := computeWeeklyStats(sessions, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, 1, buckets[0].Sessions)
	assert.Equal(t, 25, buckets[0].Minutes)
	assert.Equal(t, 2, buckets[6].Sessions)
	assert.Equal(t, 75, buckets[6].Minutes)
}

func TestComputeWeeklyStatsDropsOutOfWindowDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		workSession("2026-08-20", 25), // before the window
		workSession("2026-09-05", 25), // after the window (clock skew)
	}

	buckets := computeWeeklyStats(sessions, now)

	require.Len(t, buckets, 7)
	for _, bucket := range buckets {
		assert.Zero(t, bucket.Sessions)
	}
}
