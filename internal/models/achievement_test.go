package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogEntry(t *testing.T, key string) AchievementDef {
	t.Helper()
	for _, def := range AchievementCatalog {
		if def.Type == key {
			return def
		}
	}
	t.Fatalf("catalog entry %q not found", key)
	return AchievementDef{}
}

func TestCatalogTypesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AchievementCatalog {
		require.False(t, seen[def.Type], "duplicate catalog type %q", def.Type)
		seen[def.Type] = true
	}
	assert.Len(t, AchievementCatalog, 5)
}

func TestCatalogPredicateThresholds(t *testing.T) {
	tests := []struct {
		key          string
		today, total int
		unlocked     bool
	}{
		{"first_session", 0, 0, false},
		{"first_session", 0, 1, true},
		{"daily_5", 4, 100, false},
		{"daily_5", 5, 5, true},
		{"daily_10", 9, 100, false},
		{"daily_10", 10, 10, true},
		{"total_50", 0, 49, false},
		{"total_50", 0, 50, true},
		{"total_50", 0, 51, true},
		{"total_100", 0, 99, false},
		{"total_100", 0, 100, true},
	}

	for _, tc := range tests {
		def := catalogEntry(t, tc.key)
		assert.Equal(t, tc.unlocked, def.Unlocked(tc.today, tc.total),
			"%s with today=%d total=%d", tc.key, tc.today, tc.total)
	}
}

func TestCatalogEntriesHaveDisplayMetadata(t *testing.T) {
	for _, def := range AchievementCatalog {
		assert.NotEmpty(t, def.Title, "title for %s", def.Type)
		assert.NotEmpty(t, def.Description, "description for %s", def.Type)
		assert.NotEmpty(t, def.Icon, "icon for %s", def.Type)
	}
}
