// Package openmeteo reads the open-meteo geocoding, forecast, air quality,
// flood and historical archive APIs through a remote.Fetcher. None of these
// APIs need a key.
package openmeteo

import (
	"context"
	"net/url"
	"spacescope/pkg/remote"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the day format the APIs expect.
const dateLayout = "2006-01-02"

// Endpoints are the upstream URLs of every API.
type Endpoints struct {
	Geocoding  string
	Forecast   string
	AirQuality string
	Flood      string
	Archive    string
}

// DefaultEndpoints returns the public production endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Geocoding:  "https://geocoding-api.open-meteo.com/v1/search",
		Forecast:   "https://api.open-meteo.com/v1/forecast",
		AirQuality: "https://air-quality-api.open-meteo.com/v1/air-quality",
		Flood:      "https://flood-api.open-meteo.com/v1/flood",
		Archive:    "https://archive-api.open-meteo.com/v1/archive",
	}
}

// Place is a geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoding is the search answer. Results is absent when nothing matched.
type Geocoding struct {
	Results []Place `json:"results"`
}

// AirQuality holds the current pollutant readings.
type AirQuality struct {
	Current struct {
		USAQI           *float64 `json:"us_aqi"`
		NitrogenDioxide *float64 `json:"nitrogen_dioxide"`
		Methane         *float64 `json:"methane"`
	} `json:"current"`
}

// Forecast holds the current and daily variables the visualizer requests.
// Variables that were not requested stay nil.
type Forecast struct {
	Current struct {
		SoilMoisture0To1cm *float64 `json:"soil_moisture_0_to_1cm"`
		Rain               *float64 `json:"rain"`
		WindGusts10m       *float64 `json:"wind_gusts_10m"`
	} `json:"current"`
	Daily struct {
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// ForecastQuery selects forecast variables.
type ForecastQuery struct {
	Current  []string
	Daily    []string
	Timezone string
}

// Flood holds the daily river discharge.
type Flood struct {
	Daily struct {
		RiverDischargeMean []*float64 `json:"river_discharge_mean"`
	} `json:"daily"`
}

// Archive holds historical daily maxima.
type Archive struct {
	Daily struct {
		Temperature2mMax []*float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// Client is safe for concurrent use.
type Client struct {
	fetcher   *remote.Fetcher
	endpoints Endpoints
}

// New constructs a Client. Empty endpoints fall back to DefaultEndpoints.
func New(fetcher *remote.Fetcher, endpoints Endpoints) *Client {
	def := DefaultEndpoints()
	if endpoints.Geocoding == "" {
		endpoints.Geocoding = def.Geocoding
	}
	if endpoints.Forecast == "" {
		endpoints.Forecast = def.Forecast
	}
	if endpoints.AirQuality == "" {
		endpoints.AirQuality = def.AirQuality
	}
	if endpoints.Flood == "" {
		endpoints.Flood = def.Flood
	}
	if endpoints.Archive == "" {
		endpoints.Archive = def.Archive
	}

	return &Client{fetcher: fetcher, endpoints: endpoints}
}

// Geocode looks up the best match for city.
func (c *Client) Geocode(ctx context.Context, city string) remote.Result[Geocoding] {
	return remote.Fetch(ctx, c.fetcher, build(c.endpoints.Geocoding, url.Values{
		"name":     {city},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}), Geocoding{})
}

// AirQuality reads the current US AQI, nitrogen dioxide and methane.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) remote.Result[AirQuality] {
	q := coords(lat, lon)
	q.Set("current", "us_aqi,nitrogen_dioxide,methane")

	return remote.Fetch(ctx, c.fetcher, build(c.endpoints.AirQuality, q), AirQuality{})
}

// Forecast reads the requested forecast variables.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, fq ForecastQuery) remote.Result[Forecast] {
	q := coords(lat, lon)
	if len(fq.Current) > 0 {
		q.Set("current", strings.Join(fq.Current, ","))
	}
	if len(fq.Daily) > 0 {
		q.Set("daily", strings.Join(fq.Daily, ","))
	}
	if fq.Timezone != "" {
		q.Set("timezone", fq.Timezone)
	}

	return remote.Fetch(ctx, c.fetcher, build(c.endpoints.Forecast, q), Forecast{})
}

// Flood reads the mean river discharge of day.
func (c *Client) Flood(ctx context.Context, lat, lon float64, day time.Time) remote.Result[Flood] {
	q := coords(lat, lon)
	q.Set("daily", "river_discharge_mean")
	q.Set("start_date", day.Format(dateLayout))
	q.Set("end_date", day.Format(dateLayout))

	return remote.Fetch(ctx, c.fetcher, build(c.endpoints.Flood, q), Flood{})
}

// Archive reads the maximum temperature recorded on day.
func (c *Client) Archive(ctx context.Context, lat, lon float64, day time.Time) remote.Result[Archive] {
	q := coords(lat, lon)
	q.Set("daily", "temperature_2m_max")
	q.Set("start_date", day.Format(dateLayout))
	q.Set("end_date", day.Format(dateLayout))

	return remote.Fetch(ctx, c.fetcher, build(c.endpoints.Archive, q), Archive{})
}

func coords(lat, lon float64) url.Values {
	return url.Values{
		"latitude":  {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
}

// build appends q to base. An unparsable base is returned as is so the fetch
// degrades on it.
func build(base string, q url.Values) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.RawQuery = q.Encode()

	return u.String()
}
