package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tableside/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tableCallEscalationJob *TableCallEscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	notificationStore ports.NotificationStore,
	escalationThreshold time.Duration,
	escalationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tableCallEscalationJob: NewTableCallEscalationJob(
			notificationStore,
			escalationThreshold,
			escalationSchedule,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tableCallEscalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start table call escalation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tableCallEscalationJob.Stop()
}
