package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"spacescope/pkg/openmeteo"
	"spacescope/pkg/remote"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestClient serves every API from one httptest server and hands each
// request's query to the caller.
func newTestClient(t *testing.T, body string) (*openmeteo.Client, <-chan url.URL) {
	t.Helper()

	seen := make(chan url.URL, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- *r.URL
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	f, err := remote.New(remote.Options{})
	require.NoError(t, err)

	return openmeteo.New(f, openmeteo.Endpoints{
		Geocoding:  srv.URL + "/geo",
		Forecast:   srv.URL + "/forecast",
		AirQuality: srv.URL + "/air",
		Flood:      srv.URL + "/flood",
		Archive:    srv.URL + "/archive",
	}), seen
}

func TestClient_Geocode(t *testing.T) {
	c, seen := newTestClient(t,
		`{"results":[{"name":"Paris","country":"France","latitude":48.85,"longitude":2.35}]}`)

	res := c.Geocode(context.Background(), "Paris")
	require.Equal(t, remote.StatusLive, res.Status)
	require.Len(t, res.Payload.Results, 1)
	require.Equal(t, "France", res.Payload.Results[0].Country)

	u := <-seen
	require.Equal(t, "/geo", u.Path)
	require.Equal(t, "Paris", u.Query().Get("name"))
	require.Equal(t, "1", u.Query().Get("count"))
}

func TestClient_AirQuality(t *testing.T) {
	c, seen := newTestClient(t, `{"current":{"us_aqi":42,"nitrogen_dioxide":17.26,"methane":null}}`)

	res := c.AirQuality(context.Background(), 48.85, 2.35)
	require.Equal(t, remote.StatusLive, res.Status)
	require.InDelta(t, 42, *res.Payload.Current.USAQI, 0.001)
	require.InDelta(t, 17.26, *res.Payload.Current.NitrogenDioxide, 0.001)
	require.Nil(t, res.Payload.Current.Methane)

	u := <-seen
	require.Equal(t, "48.85", u.Query().Get("latitude"))
	require.Equal(t, "2.35", u.Query().Get("longitude"))
	require.Equal(t, "us_aqi,nitrogen_dioxide,methane", u.Query().Get("current"))
}

func TestClient_Forecast(t *testing.T) {
	c, seen := newTestClient(t, `{"daily":{"temperature_2m_max":[21.5,null]}}`)

	res := c.Forecast(context.Background(), 1, 2, openmeteo.ForecastQuery{
		Daily:    []string{"temperature_2m_max"},
		Timezone: "auto",
	})
	require.Equal(t, remote.StatusLive, res.Status)
	require.Len(t, res.Payload.Daily.Temperature2mMax, 2)
	require.InDelta(t, 21.5, *res.Payload.Daily.Temperature2mMax[0], 0.001)

	u := <-seen
	require.Equal(t, "temperature_2m_max", u.Query().Get("daily"))
	require.Equal(t, "auto", u.Query().Get("timezone"))
	require.Empty(t, u.Query().Get("current"))
}

func TestClient_FloodAndArchiveDates(t *testing.T) {
	day := time.Date(1995, 3, 7, 15, 0, 0, 0, time.UTC)

	c, seen := newTestClient(t, `{"daily":{"river_discharge_mean":[310.4]}}`)
	flood := c.Flood(context.Background(), 1, 2, day)
	require.InDelta(t, 310.4, *flood.Payload.Daily.RiverDischargeMean[0], 0.001)
	u := <-seen
	require.Equal(t, "/flood", u.Path)
	require.Equal(t, "1995-03-07", u.Query().Get("start_date"))
	require.Equal(t, "1995-03-07", u.Query().Get("end_date"))

	c, seen = newTestClient(t, `{"daily":{"temperature_2m_max":[9.1]}}`)
	archive := c.Archive(context.Background(), 1, 2, day)
	require.Equal(t, remote.StatusLive, archive.Status)
	u = <-seen
	require.Equal(t, "/archive", u.Path)
	require.Equal(t, "temperature_2m_max", u.Query().Get("daily"))
}
