// Package snapshot keeps a history of the live feeds so the dashboard can
// chart them over time.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"spacescope/internal/config"
	"spacescope/pkg/domain"
	"spacescope/pkg/logger"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	"spacescope/pkg/spacefeed"
	"spacescope/pkg/storage"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageSize is used when History is called without a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the History limit.
	MaxPageSize = 100
)

// Options configure snapshot retention and refresh deduplication.
type Options struct {
	// Retention is how long snapshots are kept. Zero keeps them forever.
	Retention time.Duration
	// RefreshInterval is the period of the scheduled refresh; manual refresh
	// requests within a period are deduplicated.
	RefreshInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Retention:       cfg.Worker.SnapshotRetention,
		RefreshInterval: cfg.Worker.RefreshInterval,
	}
}

// recorder is the concrete implementation of the Recorder interface.
type recorder struct {
	options Options
	storage storage.Storage
	feeds   spacefeed.Client
	now     func() time.Time
}

func (r recorder) Refresh(ctx context.Context) ([]domain.FeedSnapshot, error) {
	var (
		iss   remote.Result[domain.ISSPosition]
		solar remote.Result[domain.SolarActivity]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		iss = r.feeds.ISSLocation(gctx)

		return nil
	})
	g.Go(func() error {
		solar = r.feeds.SolarActivity(gctx)

		return nil
	})
	_ = g.Wait()

	issSnap, err := newSnapshot(domain.FeedISS, iss)
	if err != nil {
		return nil, err
	}
	solarSnap, err := newSnapshot(domain.FeedSolar, solar)
	if err != nil {
		return nil, err
	}

	stored, err := r.storage.StoreSnapshots(ctx, issSnap, solarSnap)
	if err != nil {
		return nil, fmt.Errorf("could not store snapshots: %w", err)
	}
	logger.Debug(ctx, "feed snapshots stored",
		zap.String("iss", string(iss.Status)),
		zap.String("solar", string(solar.Status)))

	return stored, nil
}

func (r recorder) Prune(ctx context.Context) (int64, error) {
	if r.options.Retention <= 0 {
		return 0, nil
	}

	n, err := r.storage.DeleteSnapshotsBefore(ctx, r.now().Add(-r.options.Retention))
	if err != nil {
		return 0, fmt.Errorf("could not prune snapshots: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "old feed snapshots pruned", zap.Int64("count", n))
	}

	return n, nil
}

func (r recorder) RequestRefresh(ctx context.Context) (bool, error) {
	added, err := r.storage.AddJob(ctx, JobArgs{uniquePeriod: r.options.RefreshInterval}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add refresh job: %w", err)
	}

	return added, nil
}

func (r recorder) History(ctx context.Context,
	feed domain.Feed,
	cursor string,
	limit uint) ([]domain.FeedSnapshot, string, error) {
	if !feed.Valid() {
		return nil, "", serrors.With(serrors.ErrNotFound, "unknown feed %q", feed)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := r.storage.FeedSnapshots(ctx, feed, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get feed snapshots: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Snapshots, next, nil
}

func newSnapshot[T any](feed domain.Feed, res remote.Result[T]) (domain.FeedSnapshot, error) {
	payload, err := json.Marshal(res.Payload)
	if err != nil {
		return domain.FeedSnapshot{}, fmt.Errorf("could not marshal %s payload: %w", feed, err)
	}

	return domain.FeedSnapshot{
		Feed:    feed,
		Status:  string(res.Status),
		Payload: payload,
	}, nil
}

// New creates a Recorder that reads feeds and persists snapshots in storage.
func New(storage storage.Storage, feeds spacefeed.Client, options Options) Recorder {
	return &recorder{
		options: options,
		storage: storage,
		feeds:   feeds,
		now:     time.Now,
	}
}
