package snapshot

import (
	"context"
	"spacescope/pkg/domain"
)

//go:generate mockgen -package mocksnapshot -source=interface.go -destination=mock/mocksnapshot.go *
type Recorder interface {
	// Refresh reads every tracked feed and stores one snapshot per feed.
	Refresh(ctx context.Context) ([]domain.FeedSnapshot, error)
	// Prune removes snapshots older than the retention window.
	Prune(ctx context.Context) (int64, error)
	// RequestRefresh enqueues a refresh job. It reports false when one is
	// already queued.
	RequestRefresh(ctx context.Context) (bool, error)
	// History returns a page of snapshots of feed, newest first, created
	// before the RFC3339 cursor, and the cursor of the next page.
	History(ctx context.Context, feed domain.Feed, cursor string, limit uint) ([]domain.FeedSnapshot, string, error)
}
