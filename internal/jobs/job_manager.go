package jobs

import (
	"fmt"
	"log/slog"

	"dilivry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storeStatsJob *StoreStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(store ports.Store, logger *slog.Logger) *JobManager {
	return &JobManager{
		storeStatsJob: NewStoreStatsJob(store, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start store stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storeStatsJob.Stop()
}
