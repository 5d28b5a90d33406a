package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlockTypes(todayWork, totalWork int, unlocked map[string]bool) []string {
	var types []string
	for _, def := range pendingUnlocks(todayWork, totalWork, unlocked) {
		types = append(types, def.Type)
	}
	return types
}

func TestPendingUnlocksReturnsAllEarnedMilestones(t *testing.T) {
	types := unlockTypes(5, 50, map[string]bool{})
	assert.Equal(t, []string{"first_session", "daily_5", "total_50"}, types)
}

func TestEvaluationIsIdempotentOverIdenticalHistory(t *testing.T) {
	unlocked := make(map[string]bool)

	first := pendingUnlocks(5, 50, unlocked)
	require.NotEmpty(t, first)
	for _, def := range first {
		unlocked[def.Type] = true
	}

	// Same history again: nothing left to insert, so no duplicate
	// (owner, type) rows can be created.
	second := pendingUnlocks(5, 50, unlocked)
	assert.Empty(t, second)
}

func TestPendingUnlocksSkipsAlreadyUnlockedOnly(t *testing.T) {
	unlocked := map[string]bool{"first_session": true, "daily_5": true}

	types := unlockTypes(5, 50, unlocked)
	assert.Equal(t, []string{"total_50"}, types, "only the newly earned milestone is inserted")
}

func TestPendingUnlocksAtThresholdBoundary(t *testing.T) {
	unlocked := map[string]bool{"first_session": true}

	assert.Empty(t, unlockTypes(1, 49, unlocked))

	types := unlockTypes(1, 50, unlocked)
	assert.Equal(t, []string{"total_50"}, types)

	// A 51st session does not re-produce total_50
	unlocked["total_50"] = true
	assert.Empty(t, unlockTypes(1, 51, unlocked))
}
