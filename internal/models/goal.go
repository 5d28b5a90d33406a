package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GoalTypeDaily   = "daily"
	GoalTypeWeekly  = "weekly"
	GoalTypeMonthly = "monthly"
)

// Goal is a materialized progress record for a period, written by the
// background rollup job and served read-only.
type Goal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Type      string             `bson:"type" json:"type"`
	Target    int                `bson:"target" json:"target"`
	Current   int                `bson:"current" json:"current"`
	Period    string             `bson:"period" json:"period"` // YYYY-MM-DD for daily goals
	Completed bool               `bson:"completed" json:"completed"`
}
