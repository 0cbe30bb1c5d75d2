// Package worker runs the background jobs of the gateway on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"spacescope/internal/config"
	"spacescope/internal/snapshot"
	"spacescope/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job queue.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// RefreshInterval is how often feed snapshots are taken.
	RefreshInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		RefreshInterval: cfg.Worker.RefreshInterval,
	}
}

// PeriodicJobs returns the jobs scheduled by the queue: a feed refresh every
// RefreshInterval, also run once on start.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	if options.RefreshInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return snapshot.JobArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	recorder snapshot.Recorder,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRefreshFeedsWorker(recorder))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		PeriodicJobs: PeriodicJobs(options),
		Workers:      workers,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
