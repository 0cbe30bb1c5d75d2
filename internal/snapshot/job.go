package snapshot

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments of a feed refresh job submitted to River.
type JobArgs struct {
	// uniquePeriod is the window during which a manually requested refresh is
	// deduplicated.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args JobArgs) Kind() string { return "RefreshFeedsJob" }

// InsertOpts keeps at most one queued refresh per period.
func (args JobArgs) InsertOpts() river.InsertOpts {
	if args.uniquePeriod <= 0 {
		return river.InsertOpts{}
	}

	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
