package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default values applied when a user has no stored settings, or when stored
// settings predate the introduction of a field.
const (
	DefaultWorkDuration           = 25
	DefaultShortBreakDuration     = 5
	DefaultLongBreakDuration      = 15
	DefaultSessionsUntilLongBreak = 4
	DefaultDailyGoal              = 8
)

// Settings holds a user's timer preferences. Exactly one document exists per
// user; writes go through an upsert keyed by user_id.
type Settings struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID                 primitive.ObjectID `bson:"user_id" json:"-"`
	WorkDuration           int                `bson:"work_duration" json:"workDuration"`
	ShortBreakDuration     int                `bson:"short_break_duration" json:"shortBreakDuration"`
	LongBreakDuration      int                `bson:"long_break_duration" json:"longBreakDuration"`
	SessionsUntilLongBreak int                `bson:"sessions_until_long_break" json:"sessionsUntilLongBreak"`
	SoundEnabled           bool               `bson:"sound_enabled" json:"soundEnabled"`
	NotificationsEnabled   bool               `bson:"notifications_enabled" json:"notificationsEnabled"`
	Theme                  string             `bson:"theme" json:"theme"`
	AutoStartBreaks        bool               `bson:"auto_start_breaks" json:"autoStartBreaks"`
	AutoStartPomodoros     bool               `bson:"auto_start_pomodoros" json:"autoStartPomodoros"`
	DailyGoal              int                `bson:"daily_goal" json:"dailyGoal"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"-"`
}

// DefaultSettings returns the settings a user gets before saving any.
func DefaultSettings() *Settings {
	return &Settings{
		WorkDuration:           DefaultWorkDuration,
		ShortBreakDuration:     DefaultShortBreakDuration,
		LongBreakDuration:      DefaultLongBreakDuration,
		SessionsUntilLongBreak: DefaultSessionsUntilLongBreak,
		SoundEnabled:           true,
		NotificationsEnabled:   true,
		Theme:                  ThemeDark,
		AutoStartBreaks:        false,
		AutoStartPomodoros:     false,
		DailyGoal:              DefaultDailyGoal,
	}
}
