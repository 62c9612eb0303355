package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tableside/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TableCallEscalationJob watches open table calls and escalates the ones
// nobody has acknowledged within the threshold. Escalation is a warning
// log entry; the call stays open until a waiter clears it, so an ignored
// call is escalated again on every tick.
type TableCallEscalationJob struct {
	notificationStore ports.NotificationStore
	threshold         time.Duration
	schedule          string
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewTableCallEscalationJob creates the escalation job. The schedule is a
// six-field cron expression with seconds; every tick scans all open calls.
func NewTableCallEscalationJob(
	notificationStore ports.NotificationStore,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *TableCallEscalationJob {
	return &TableCallEscalationJob{
		notificationStore: notificationStore,
		threshold:         threshold,
		schedule:          schedule,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "table_call_escalation_job"),
	}
}

// Start begins the periodic scan.
func (j *TableCallEscalationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.tick)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table call escalation job started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the periodic scan.
func (j *TableCallEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Table call escalation job stopped")
}

func (j *TableCallEscalationJob) tick() {
	ctx := context.Background()

	calls, err := j.notificationStore.GetTableCalls(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Table call scan failed", "error", err)
		return
	}

	now := time.Now()
	for _, call := range calls {
		waiting := now.Sub(call.Time())
		if waiting < j.threshold {
			continue
		}
		j.logger.WarnContext(ctx, "Table call unacknowledged past threshold",
			"table", call.Table(),
			"call_id", call.ID().String(),
			"waiting", waiting.Round(time.Second).String(),
		)
	}
}
