// Package jobs provides scheduled background tasks for the front-of-house
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TableCallEscalationJob - Periodically scans open table calls and logs
// a warning for every call that has waited past the escalation threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notificationStore, threshold, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The escalation job only reads state; store errors are logged and the
// next tick retries from scratch.
package jobs
