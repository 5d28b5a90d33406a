package services

import (
	"testing"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *models.Settings {
	return &models.Settings{
		WorkDuration:           25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		SessionsUntilLongBreak: 4,
		Theme:                  models.ThemeDark,
		DailyGoal:              8,
	}
}

func TestValidateSettingsAcceptsValidDocument(t *testing.T) {
	assert.NoError(t, ValidateSettings(validSettings()))
}

func TestValidateSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Settings)
	}{
		{"zero work duration", func(s *models.Settings) { s.WorkDuration = 0 }},
		{"negative work duration", func(s *models.Settings) { s.WorkDuration = -5 }},
		{"zero short break", func(s *models.Settings) { s.ShortBreakDuration = 0 }},
		{"zero long break", func(s *models.Settings) { s.LongBreakDuration = 0 }},
		{"zero long break cadence", func(s *models.Settings) { s.SessionsUntilLongBreak = 0 }},
		{"negative long break cadence", func(s *models.Settings) { s.SessionsUntilLongBreak = -1 }},
		{"zero daily goal", func(s *models.Settings) { s.DailyGoal = 0 }},
		{"unknown theme", func(s *models.Settings) { s.Theme = "solarized" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := validSettings()
			tc.mutate(settings)

			err := ValidateSettings(settings)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestApplyDefaultsFillsZeroFields(t *testing.T) {
	settings := &models.Settings{}
	applyDefaults(settings)

	assert.Equal(t, models.DefaultWorkDuration, settings.WorkDuration)
	assert.Equal(t, models.DefaultShortBreakDuration, settings.ShortBreakDuration)
	assert.Equal(t, models.DefaultLongBreakDuration, settings.LongBreakDuration)
	assert.Equal(t, models.DefaultSessionsUntilLongBreak, settings.SessionsUntilLongBreak)
	assert.Equal(t, models.DefaultDailyGoal, settings.DailyGoal)
	assert.Equal(t, models.ThemeDark, settings.Theme)
}

func TestApplyDefaultsPreservesStoredValues(t *testing.T) {
	settings := &models.Settings{
		WorkDuration:           50,
		ShortBreakDuration:     10,
		LongBreakDuration:      30,
		SessionsUntilLongBreak: 2,
		Theme:                  models.ThemeLight,
		DailyGoal:              12,
	}
	applyDefaults(settings)

	assert.Equal(t, 50, settings.WorkDuration)
	assert.Equal(t, 10, settings.ShortBreakDuration)
	assert.Equal(t, 30, settings.LongBreakDuration)
	assert.Equal(t, 2, settings.SessionsUntilLongBreak)
	assert.Equal(t, models.ThemeLight, settings.Theme)
	assert.Equal(t, 12, settings.DailyGoal)
}

func TestDefaultSettingsMatchSpecifiedDefaults(t *testing.T) {
	defaults := models.DefaultSettings()

	assert.Equal(t, 25, defaults.WorkDuration)
	assert.Equal(t, 5, defaults.ShortBreakDuration)
	assert.Equal(t, 15, defaults.LongBreakDuration)
	assert.Equal(t, 4, defaults.SessionsUntilLongBreak)
	assert.Equal(t, models.ThemeDark, defaults.Theme)
	assert.Equal(t, 8, defaults.DailyGoal)
	assert.False(t, defaults.AutoStartBreaks)
	assert.False(t, defaults.AutoStartPomodoros)
	assert.NoError(t, ValidateSettings(defaults))
}
