package models

// TodayStats summarizes a user's sessions for the current day.
type TodayStats struct {
	WorkSessions  int     `json:"workSessions"`
	TotalMinutes  int     `json:"totalMinutes"`
	TotalSessions int     `json:"totalSessions"`
	DailyGoal     int     `json:"dailyGoal"`
	GoalProgress  float64 `json:"goalProgress"` // percent, clamped to 100
}

// DailyStat is one bucket of the weekly overview.
type DailyStat struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}
