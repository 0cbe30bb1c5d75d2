package weatherapi_test

import (
	"context"
	"io"
	"net/http"
	"spacescope/pkg/remote"
	"spacescope/pkg/weather"
	"spacescope/pkg/weather/weatherapi"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, key string, fn rtFunc) *weatherapi.Client {
	t.Helper()

	f, err := remote.New(remote.Options{HTTPClient: &http.Client{Transport: fn}})
	require.NoError(t, err)

	return weatherapi.New(f, "", key)
}

func TestClient_Current_success(t *testing.T) {
	c := newTestClient(t, "test-key", func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.weatherapi.com", r.URL.Host)
		require.Equal(t, "/v1/current.json", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "51.5,-0.12", r.URL.Query().Get("q"))
		require.Equal(t, "yes", r.URL.Query().Get("aqi"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(`{"location":{"name":"London"},"current":{
				"temp_c":11.5,"condition":{"text":"Partly cloudy"},"wind_kph":14.4,
				"humidity":81,"uv":2,"air_quality":{"pm2_5":6.3,"pm10":9.1}}}`)),
		}, nil
	})

	res := c.Current(context.Background(), 51.5, -0.12)
	require.Equal(t, remote.StatusLive, res.Status)
	require.InDelta(t, 11.5, res.Payload.TempC, 0.001)
	require.Equal(t, "Partly cloudy", res.Payload.Condition.Text)
	require.InDelta(t, 14.4, res.Payload.WindKph, 0.001)
	require.InDelta(t, 81, res.Payload.Humidity, 0.001)
	require.InDelta(t, 2, res.Payload.UV, 0.001)
	require.InDelta(t, 6.3, res.Payload.AirQuality.PM25, 0.001)
	require.InDelta(t, 9.1, res.Payload.AirQuality.PM10, 0.001)
}

func TestClient_Current_rejected(t *testing.T) {
	c := newTestClient(t, "bad-key", func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader(`{"error":{"code":2008}}`)),
		}, nil
	})

	res := c.Current(context.Background(), 1, 2)
	require.Equal(t, remote.StatusError, res.Status)
	require.Equal(t, weather.Fallback(), res.Payload)
}

func TestClient_Current_noKeySkipsNetwork(t *testing.T) {
	c := newTestClient(t, "", func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected without an API key")

		return nil, nil
	})

	res := c.Current(context.Background(), 1, 2)
	require.Equal(t, remote.StatusSimulated, res.Status)
	require.Equal(t, "Unavailable", res.Payload.Condition.Text)
}
