// Package spacefeed defines the space data feeds the dashboard shows and the
// fallbacks they degrade to when the upstream providers are unavailable.
package spacefeed

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
)

// Client reads the space data feeds. Every method resolves to a usable
// payload; the Result status tells whether it is live.
//
//go:generate mockgen -package mockspacefeed -source=interface.go -destination=mock/mockspacefeed.go *
type Client interface {
	// ISSLocation returns the current position of the station.
	ISSLocation(ctx context.Context) remote.Result[domain.ISSPosition]
	// SolarActivity returns the NOAA space weather scales.
	SolarActivity(ctx context.Context) remote.Result[domain.SolarActivity]
	// NasaAPOD returns the astronomy picture of the day.
	NasaAPOD(ctx context.Context) remote.Result[domain.APOD]
	// SpaceXLatest returns the most recent launch.
	SpaceXLatest(ctx context.Context) remote.Result[domain.SpaceXLaunch]
	// TechPortProjects returns the NASA technology project listing.
	TechPortProjects(ctx context.Context) remote.Result[domain.TechPortProjects]
}
