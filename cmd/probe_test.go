package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"spacescope/pkg/remote"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunProbes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/live":
			_, _ = w.Write([]byte(`{"message":"success","_status":"live","_origin":"remote-api"}`))
		case "/degraded":
			_, _ = w.Write([]byte(`{"_status":"simulated","_origin":"local-fallback"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	f, err := remote.New(remote.Options{Timeout: time.Second})
	require.NoError(t, err)

	results := runProbes(context.Background(), f, srv.URL+"/", []probe{
		{name: "live", path: "/live"},
		{name: "degraded", path: "/degraded"},
		{name: "broken", path: "/broken"},
	})

	require.Len(t, results, 3)
	require.Equal(t, "live", results[0].Name)
	require.True(t, results[0].Live())
	require.Equal(t, "remote-api", results[0].Origin)

	require.False(t, results[1].Live())
	require.Equal(t, remote.StatusLive, results[1].Transport)
	require.Equal(t, "simulated", results[1].Tag)

	require.False(t, results[2].Live())
	require.Equal(t, remote.StatusError, results[2].Transport)

	report := renderReport(results)
	require.Contains(t, report, "ONLINE")
	require.Contains(t, report, "DEGRADED (simulated, local-fallback)")
	require.Contains(t, report, "UNREACHABLE (error)")
}
