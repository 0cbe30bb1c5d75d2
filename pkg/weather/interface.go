// Package weather defines the current-conditions lookup used by the weather
// panel.
package weather

import (
	"context"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
)

// Client looks up the current conditions at a coordinate.
//
//go:generate mockgen -package mockweather -source=interface.go -destination=mock/mockweather.go *
type Client interface {
	// Current returns the conditions at lat, lon. It never fails; a degraded
	// result carries Fallback.
	Current(ctx context.Context, lat, lon float64) remote.Result[domain.Weather]
}

// Fallback is returned when the conditions cannot be read.
func Fallback() domain.Weather {
	var w domain.Weather
	w.Condition.Text = "Unavailable"

	return w
}
