package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/models"
	"github.com/nurlan-dev/Pomodoro_Tracker/internal/repository"
	"github.com/nurlan-dev/Pomodoro_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidSettings is returned when a settings update fails validation.
var ErrInvalidSettings = errors.New("invalid settings")

// SettingsService encapsulates the business logic for user settings.
type SettingsService struct {
	repo *repository.SettingsRepository
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetSettings returns the user's settings with defaults applied. A user who
// has never saved settings gets the full default document.
func (s *SettingsService) GetSettings(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error) {
	settings, err := s.repo.GetSettingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %v", err)
	}

	if settings == nil {
		defaults := models.DefaultSettings()
		defaults.UserID = userID
		return defaults, nil
	}

	applyDefaults(settings)
	return settings, nil
}

// UpdateSettings validates and persists the user's settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, userID primitive.ObjectID, settings *models.Settings) (*models.Settings, error) {
	if err := ValidateSettings(settings); err != nil {
		logger.Log.WithField("user_id", userID.Hex()).WithError(err).Warn("Rejected invalid settings update")
		return nil, err
	}

	settings.UserID = userID
	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %v", err)
	}

	return settings, nil
}

// ValidateSettings enforces the settings invariants: positive durations, a
// long-break cadence of at least 1, a daily goal of at least 1 and a known
// theme. Values that would break the timer's modulo arithmetic are rejected
// here, before they ever reach storage.
func ValidateSettings(settings *models.Settings) error {
	if settings.WorkDuration < 1 {
		return fmt.Errorf("%w: work duration must be positive", ErrInvalidSettings)
	}
	if settings.ShortBreakDuration < 1 {
		return fmt.Errorf("%w: short break duration must be positive", ErrInvalidSettings)
	}
	if settings.LongBreakDuration < 1 {
		return fmt.Errorf("%w: long break duration must be positive", ErrInvalidSettings)
	}
	if settings.SessionsUntilLongBreak < 1 {
		return fmt.Errorf("%w: sessions until long break must be at least 1", ErrInvalidSettings)
	}
	if settings.DailyGoal < 1 {
		return fmt.Errorf("%w: daily goal must be at least 1", ErrInvalidSettings)
	}
	if settings.Theme != models.ThemeLight && settings.Theme != models.ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, settings.Theme)
	}
	return nil
}

// applyDefaults fills zero-valued optional fields on a stored document.
// Documents written before a field existed decode with the zero value.
func applyDefaults(settings *models.Settings) {
	if settings.WorkDuration == 0 {
		settings.WorkDuration = models.DefaultWorkDuration
	}
	if settings.ShortBreakDuration == 0 {
		settings.ShortBreakDuration = models.DefaultShortBreakDuration
	}
	if settings.LongBreakDuration == 0 {
		settings.LongBreakDuration = models.DefaultLongBreakDuration
	}
	if settings.SessionsUntilLongBreak == 0 {
		settings.SessionsUntilLongBreak = models.DefaultSessionsUntilLongBreak
	}
	if settings.DailyGoal == 0 {
		settings.DailyGoal = models.DefaultDailyGoal
	}
	if settings.Theme == "" {
		settings.Theme = models.ThemeDark
	}
}
