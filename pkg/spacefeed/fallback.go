package spacefeed

import (
	"encoding/json"
	"spacescope/pkg/domain"
	"time"
)

// FallbackISS places the station over London.
func FallbackISS(now time.Time) domain.ISSPosition {
	var p domain.ISSPosition
	p.Timestamp = now.Unix()
	p.Position.Latitude = "51.5074"
	p.Position.Longitude = "-0.1278"
	p.Message = "simulated"

	return p
}

// FallbackSolar reports every scale of the current period as offline.
func FallbackSolar() domain.SolarActivity {
	offline := domain.SolarScale{Value: 0, Text: "OFFLINE"}

	return domain.SolarActivity{
		"0": {R: offline, S: offline, G: offline},
	}
}

// FallbackAPOD is shown while the APOD feed is unavailable.
func FallbackAPOD() domain.APOD {
	return domain.APOD{
		URL:         "https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?q=80&w=1200&auto=format&fit=crop",
		Title:       "Simulation Active",
		Explanation: "The live NASA APOD feed is currently in simulated mode.",
	}
}

// FallbackSpaceX is an empty launch document.
func FallbackSpaceX() domain.SpaceXLaunch {
	return domain.SpaceXLaunch{}
}

// FallbackTechPort is an empty project listing.
func FallbackTechPort() domain.TechPortProjects {
	return domain.TechPortProjects{Projects: []json.RawMessage{}}
}
