package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// The args parameter contains the job payload and opts can be used to
// customize insertion behavior (e.g., queue name, uniqueness).
//
// Example:
//
//	inserted, err := storage.AddJob(ctx, worker.RefreshFeedsArgs{}, nil)
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments and reports whether it
	// was inserted (false when skipped as a unique duplicate). It is atomic
	// with respect to any surrounding transaction when supported by the backend.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
