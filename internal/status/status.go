// Package status reports the health of the gateway and its upstreams.
package status

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/spacefeed"

	"golang.org/x/sync/errgroup"
)

// monitor is the concrete implementation of the Monitor interface.
type monitor struct {
	fetcher  *remote.Fetcher
	feeds    spacefeed.Client
	db       Pinger
	aiOnline bool
}

// Status probes ISS, solar and the database concurrently. The gateway is
// reported OFFLINE only when the ISS feed had to be simulated; a NOAA or
// database outage leaves it ONLINE with the failing part tagged.
func (m monitor) Status(ctx context.Context) domain.SystemStatus {
	var (
		iss, solar remote.Status
		database   = remote.StatusSimulated
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		iss = m.feeds.ISSLocation(gctx).Status

		return nil
	})
	g.Go(func() error {
		solar = m.feeds.SolarActivity(gctx).Status

		return nil
	})
	if m.db != nil {
		g.Go(func() error {
			database = remote.Guard(gctx, m.fetcher, "database.ping", 0, struct{}{},
				func(ctx context.Context) (struct{}, error) {
					return struct{}{}, m.db.Ping(ctx)
				}).Status

			return nil
		})
	}
	_ = g.Wait()

	assistant := remote.StatusSimulated
	if m.aiOnline {
		assistant = remote.StatusLive
	}

	gateway := domain.GatewayOnline
	if iss == remote.StatusSimulated {
		gateway = domain.GatewayOffline
	}

	return domain.SystemStatus{
		Gateway:   gateway,
		ISS:       string(iss),
		Solar:     string(solar),
		Database:  string(database),
		Assistant: string(assistant),
	}
}

// New creates a Monitor. db may be nil when the gateway runs without a
// database; aiOnline tells whether a generative AI backend is configured.
func New(fetcher *remote.Fetcher, feeds spacefeed.Client, db Pinger, aiOnline bool) Monitor {
	return &monitor{
		fetcher:  fetcher,
		feeds:    feeds,
		db:       db,
		aiOnline: aiOnline,
	}
}
