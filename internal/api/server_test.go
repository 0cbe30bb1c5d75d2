package api_test

import (
	"net/http"
	"net/http/httptest"
	"spacescope/internal/api"
	"spacescope/internal/api/handler/v1handler"
	mockstatus "spacescope/internal/status/mock"
	"spacescope/pkg/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (http.Handler, *mockstatus.MockMonitor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	monitor := mockstatus.NewMockMonitor(ctrl)

	srv, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Status: monitor},
		MeterProvider: sdkmetric.NewMeterProvider(),
	}, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"https://dash.example"},
	})
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)

	return srv.Handler, monitor
}

func TestServer_Routes(t *testing.T) {
	h, monitor := newServer(t)
	monitor.EXPECT().Status(gomock.Any()).Return(domain.SystemStatus{Gateway: domain.GatewayOnline})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("Origin", "https://dash.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"gateway":"ONLINE"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "https://dash.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Specs(t *testing.T) {
	h, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "openapi:"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/docs/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "SpaceScope Gateway")
}

func TestServer_Metrics(t *testing.T) {
	h, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_NotFound(t *testing.T) {
	h, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/iss", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
