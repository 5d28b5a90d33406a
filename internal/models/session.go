package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session type values. These double as the timer phase identifiers.
const (
	SessionTypeWork      = "work"
	SessionTypeBreak     = "break"
	SessionTypeLongBreak = "longBreak"
)

// DateLayout is the calendar-day format stored on every session.
const DateLayout = "2006-01-02"

// Session is a completed pomodoro phase. Sessions are insert-only: no update
// or delete operation exists for them.
type Session struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"user_id" json:"user_id"`
	Type        string              `bson:"type" json:"type"`
	Duration    int                 `bson:"duration" json:"duration"` // planned minutes, not wall-clock elapsed
	CompletedAt time.Time           `bson:"completed_at" json:"completed_at"`
	Date        string              `bson:"date" json:"date"` // YYYY-MM-DD, derived from CompletedAt
	TaskID      *primitive.ObjectID `bson:"task_id,omitempty" json:"task_id,omitempty"`
}

// ValidSessionType reports whether t is one of the known session types.
func ValidSessionType(t string) bool {
	return t == SessionTypeWork || t == SessionTypeBreak || t == SessionTypeLongBreak
}
