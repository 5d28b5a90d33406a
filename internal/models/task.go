package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllowedPriorities enumerates the valid task priority values.
var AllowedPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// Task is a unit of work a user can attach pomodoro sessions to.
type Task struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Completed          bool               `bson:"completed" json:"completed"`
	EstimatedPomodoros int                `bson:"estimated_pomodoros" json:"estimated_pomodoros"`
	CompletedPomodoros int                `bson:"completed_pomodoros" json:"completed_pomodoros"`
	Priority           string             `bson:"priority" json:"priority"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	DueDate            *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// TaskUpdate carries the PATCH-able subset of Task fields. Nil pointers mean
// "leave unchanged". CompletedPomodoros is deliberately absent: the counter
// is only ever bumped by a completed work session.
type TaskUpdate struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Completed          *bool      `json:"completed,omitempty"`
	EstimatedPomodoros *int       `json:"estimated_pomodoros,omitempty"`
	Priority           *string    `json:"priority,omitempty"`
	Category           *string    `json:"category,omitempty"`
	DueDate            *time.Time `json:"due_date,omitempty"`
}
