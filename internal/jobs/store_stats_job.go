package jobs

import (
	"context"
	"log/slog"

	"dilivry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StoreStatsJob periodically reads the store statistics and logs them.
// It is the operational heartbeat: a missing stats line means the store
// or the scheduler is in trouble.
type StoreStatsJob struct {
	store  ports.Store
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStoreStatsJob creates a job that reports store statistics once a
// minute.
func NewStoreStatsJob(store ports.Store, logger *slog.Logger) *StoreStatsJob {
	return &StoreStatsJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "store_stats_job"),
	}
}

// Start begins the stats job on a once-a-minute schedule.
func (j *StoreStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.store.Stats(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Store stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Store stats",
			"max_order_id", stats.MaxOrderID,
			"chats", stats.ChatCount,
			"users", stats.UserCount,
			"orders", stats.OrderCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *StoreStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store stats job stopped")
}
