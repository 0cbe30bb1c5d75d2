// Package weatherapi provides a weather.Client implementation backed by the
// weatherapi.com current conditions API.
package weatherapi

import (
	"context"
	"net/url"
	"spacescope/pkg/domain"
	"spacescope/pkg/logger"
	"spacescope/pkg/remote"
	"spacescope/pkg/weather"
	"strconv"
)

// DefaultEndpoint is the weatherapi.com current conditions endpoint.
const DefaultEndpoint = "https://api.weatherapi.com/v1/current.json"

// Client talks to weatherapi.com through a remote.Fetcher. It is safe for
// concurrent use.
type Client struct {
	fetcher  *remote.Fetcher // fetcher bounds and instruments every read
	endpoint string          // endpoint is the current.json URL
	apiKey   string          // apiKey is the weatherapi.com key
}

// currentResp is the subset of current.json the panel shows.
type currentResp struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		WindKph    float64 `json:"wind_kph"`
		Humidity   float64 `json:"humidity"`
		UV         float64 `json:"uv"`
		AirQuality struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"air_quality"`
	} `json:"current"`
}

// Current reads the conditions at lat, lon including air quality. Without an
// API key no request is made and the fallback is returned as simulated.
func (c *Client) Current(ctx context.Context, lat, lon float64) remote.Result[domain.Weather] {
	if c.apiKey == "" {
		logger.Debug(ctx, "weather API key not configured, serving fallback")

		return remote.Degrade(weather.Fallback(), remote.StatusSimulated)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return remote.Degrade(weather.Fallback(), remote.StatusSimulated)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("aqi", "yes")
	u.RawQuery = q.Encode()

	raw := remote.Fetch(ctx, c.fetcher, u.String(), currentResp{})

	return remote.Map(raw, toDomain, weather.Fallback())
}

func toDomain(r currentResp) domain.Weather {
	var w domain.Weather
	w.TempC = r.Current.TempC
	w.Condition.Text = r.Current.Condition.Text
	w.WindKph = r.Current.WindKph
	w.Humidity = r.Current.Humidity
	w.UV = r.Current.UV
	w.AirQuality.PM25 = r.Current.AirQuality.PM25
	w.AirQuality.PM10 = r.Current.AirQuality.PM10

	return w
}

// Ensure Client conforms to the weather.Client interface at compile time.
var _ weather.Client = (*Client)(nil)

// New constructs a Client. An empty endpoint uses DefaultEndpoint.
func New(fetcher *remote.Fetcher, endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		fetcher:  fetcher,
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}
