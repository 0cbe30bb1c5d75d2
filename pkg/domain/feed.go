package domain

import (
	"encoding/json"
	"time"
)

// ISSPosition is the open-notify answer for the current station position.
type ISSPosition struct {
	Timestamp int64 `json:"timestamp"`
	Position  struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
	Message string `json:"message"`
}

// SolarScale is one NOAA space weather scale reading.
type SolarScale struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// SolarReading groups the radio blackout, solar radiation and geomagnetic
// storm scales of one NOAA period.
type SolarReading struct {
	R SolarScale `json:"r"`
	S SolarScale `json:"s"`
	G SolarScale `json:"g"`
}

// SolarActivity maps the NOAA period ("0" current, "1" last 24h peak, "2"
// peak since the previous report) to its reading.
type SolarActivity map[string]SolarReading

// APOD is the NASA astronomy picture of the day.
type APOD struct {
	Date        string `json:"date,omitempty"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

// SpaceXLaunch is the latest launch document, passed through as is.
type SpaceXLaunch map[string]any

// TechPortProjects is the NASA TechPort project listing.
type TechPortProjects struct {
	Projects []json.RawMessage `json:"projects"`
}

// Feed names a stored feed.
type Feed string

const (
	FeedISS   Feed = "iss"
	FeedSolar Feed = "solar"
)

// Valid reports whether f is a known feed.
func (f Feed) Valid() bool {
	return f == FeedISS || f == FeedSolar
}

// FeedSnapshot is a stored copy of a feed read, kept for the history view.
type FeedSnapshot struct {
	ID        int64           `json:"id"`
	Feed      Feed            `json:"feed"`
	Status    string          `json:"status"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
