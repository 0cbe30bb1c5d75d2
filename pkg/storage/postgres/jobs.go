package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// newJobClient creates an insert-only River client bound to db. It has no
// queues or workers; jobs are worked by the client started in internal/worker.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job and reports whether it was inserted; false
// means a unique job with the same arguments was already pending.
//
// Inside a transaction the job is inserted with InsertTx, so it only becomes
// visible if the surrounding transaction commits. Otherwise it is visible as
// soon as the insert succeeds.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	jobs := p.jobs
	if jobs == nil {
		db, _ := p.DB.(*sql.DB)

		var err error
		if jobs, err = newJobClient(db); err != nil {
			return false, err
		}
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
