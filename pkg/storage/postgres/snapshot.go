package postgres

import (
	"context"
	"fmt"
	"spacescope/pkg/domain"
	"spacescope/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	snapshotsTable = "feed_snapshots"
)

func (p *PgSQL) StoreSnapshots(ctx context.Context, snapshots ...domain.FeedSnapshot) ([]domain.FeedSnapshot, error) {
	if len(snapshots) == 0 {
		return nil, nil
	}

	var result []PgSnapshot
	if err := p.Builder.Insert(snapshotsTable).
		Rows(domainSnapshotsToPg(snapshots)).
		Returning(&PgSnapshot{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store snapshots into pg: %w", err)
	}

	return pgSnapshotsToDomain(result), nil
}

// FeedSnapshots returns snapshots of feed created before the optional cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) FeedSnapshots(ctx context.Context,
	feed domain.Feed,
	cursor time.Time,
	limit uint) (storage.FeedSnapshots, error) {
	w := []goqu.Expression{
		goqu.I("feed").Eq(string(feed)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(snapshotsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgSnapshot
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.FeedSnapshots{}, fmt.Errorf("could not fetch feed snapshots from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.FeedSnapshots{
		Snapshots:  pgSnapshotsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := p.Builder.Delete(snapshotsTable).
		Where(goqu.I("created_at").Lt(t)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete snapshots from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted snapshots: %w", err)
	}

	return n, nil
}
