package storage

import (
	"context"
	"spacescope/pkg/domain"
	"time"
)

// FeedSnapshots groups a page of snapshots together with an optional
// NextCursor used for pagination.
type FeedSnapshots struct {
	// Snapshots contains the current page, newest first.
	Snapshots []domain.FeedSnapshot
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// SnapshotStorage persists feed snapshots.
type SnapshotStorage interface {
	// StoreSnapshots inserts one or more snapshots and returns the stored rows
	// including generated fields.
	StoreSnapshots(ctx context.Context, snapshots ...domain.FeedSnapshot) ([]domain.FeedSnapshot, error)
	// FeedSnapshots returns a page of snapshots of feed created before the
	// optional cursor, newest first.
	FeedSnapshots(ctx context.Context, feed domain.Feed, cursor time.Time, limit uint) (FeedSnapshots, error)
	// DeleteSnapshotsBefore removes snapshots older than t and returns how many
	// were deleted.
	DeleteSnapshotsBefore(ctx context.Context, t time.Time) (int64, error)
}
