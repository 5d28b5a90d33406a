package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement is a milestone unlocked by a user. At most one document exists
// per (user, type) pair; unlocks are never revoked.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Type        string             `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	UnlockedAt  time.Time          `bson:"unlocked_at" json:"unlocked_at"`
}

// AchievementDef is one entry of the fixed achievement catalog. Unlocked is a
// pure predicate over the user's work-session counts.
type AchievementDef struct {
	Type        string
	Title       string
	Description string
	Icon        string
	Unlocked    func(todayWork, totalWork int) bool
}

// AchievementCatalog is the full set of milestones, in evaluation order.
// Entries are independent and idempotent, so order only affects insertion
// order of simultaneous unlocks.
var AchievementCatalog = []AchievementDef{
	{
		Type:        "first_session",
		Title:       "Getting Started",
		Description: "Complete your first Pomodoro session",
		Icon:        "🎯",
		Unlocked:    func(today, total int) bool { return total >= 1 },
	},
	{
		Type:        "daily_5",
		Title:       "Focused Day",
		Description: "Complete 5 sessions in one day",
		Icon:        "🔥",
		Unlocked:    func(today, total int) bool { return today >= 5 },
	},
	{
		Type:        "daily_10",
		Title:       "Productivity Master",
		Description: "Complete 10 sessions in one day",
		Icon:        "⚡",
		Unlocked:    func(today, total int) bool { return today >= 10 },
	},
	{
		Type:        "total_50",
		Title:       "Dedicated Learner",
		Description: "Complete 50 total sessions",
		Icon:        "📚",
		Unlocked:    func(today, total int) bool { return total >= 50 },
	},
	{
		Type:        "total_100",
		Title:       "Focus Champion",
		Description: "Complete 100 total sessions",
		Icon:        "🏆",
		Unlocked:    func(today, total int) bool { return total >= 100 },
	},
}
