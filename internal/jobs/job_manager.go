package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

func NewJobManager(publishOutboxHandler outboxPublisher, outboxBatchSize int, logger *slog.Logger) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(publishOutboxHandler, outboxBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
}
