package cron

import (
	"context"

	"github.com/nurlan-dev/Pomodoro_Tracker/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartRollupCronJobs schedules the goal rollup: a nightly run finalizing
// the day that just ended and an hourly refresh of today's progress.
func StartRollupCronJobs(rollup *jobs.GoalRollup) {
	c := cron.New()

	c.AddFunc("5 0 * * *", func() {
		if err := rollup.RunForYesterday(context.Background()); err != nil {
			logrus.WithError(err).Error("Nightly goal rollup failed")
		}
	})

	c.AddFunc("@hourly", func() {
		if err := rollup.RunForToday(context.Background()); err != nil {
			logrus.WithError(err).Error("Hourly goal rollup failed")
		}
	})

	c.Start()
}
