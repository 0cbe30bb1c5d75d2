package worker

import (
	"context"
	"fmt"
	"spacescope/internal/snapshot"
	"spacescope/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// refreshTimeout bounds a refresh run. Feed reads carry their own budget; this
// covers storage.
const refreshTimeout = time.Minute

// RefreshFeedsWorker takes a snapshot of every tracked feed and prunes
// snapshots past retention. Degraded feed reads are stored like live ones so
// outages show up in the history.
type RefreshFeedsWorker struct {
	river.WorkerDefaults[snapshot.JobArgs]

	recorder snapshot.Recorder
}

// NewRefreshFeedsWorker constructs a RefreshFeedsWorker using the provided recorder.
func NewRefreshFeedsWorker(recorder snapshot.Recorder) *RefreshFeedsWorker {
	return &RefreshFeedsWorker{
		recorder: recorder,
	}
}

// Timeout overrides River's default job timeout.
func (w *RefreshFeedsWorker) Timeout(*river.Job[snapshot.JobArgs]) time.Duration {
	return refreshTimeout
}

// Work stores the snapshots; a storage failure is returned so River retries
// the job. Pruning failures are only logged.
func (w *RefreshFeedsWorker) Work(ctx context.Context, job *river.Job[snapshot.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	stored, err := w.recorder.Refresh(ctx)
	if err != nil {
		logger.Error(ctx, "error in refreshing feeds", zap.Error(err))

		return fmt.Errorf("could not refresh feeds: %w", err)
	}

	if _, err := w.recorder.Prune(ctx); err != nil {
		logger.Warn(ctx, "could not prune feed snapshots", zap.Error(err))
	}

	logger.Info(ctx, "feeds refreshed", zap.Int("snapshots", len(stored)))

	return nil
}
