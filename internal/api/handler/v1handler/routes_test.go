package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"spacescope/internal/api/handler/v1handler"
	mockassistant "spacescope/internal/assistant/mock"
	mockearth "spacescope/internal/earth/mock"
	mockprofile "spacescope/internal/profile/mock"
	mockrag "spacescope/internal/rag/mock"
	mocksnapshot "spacescope/internal/snapshot/mock"
	mockstatus "spacescope/internal/status/mock"
	"spacescope/pkg/domain"
	"spacescope/pkg/remote"
	"spacescope/pkg/serrors"
	mockspacefeed "spacescope/pkg/spacefeed/mock"
	mockweather "spacescope/pkg/weather/mock"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	feeds     *mockspacefeed.MockClient
	weather   *mockweather.MockClient
	earth     *mockearth.MockVisualizer
	status    *mockstatus.MockMonitor
	rag       *mockrag.MockEngine
	assistant *mockassistant.MockAssistant
	profile   *mockprofile.MockService
	snapshots *mocksnapshot.MockRecorder
}

type testServer struct {
	mux   *http.ServeMux
	m     mocks
	token string
	user  domain.UserID
}

func newTestServer(t *testing.T, withDB bool) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mocks{
		feeds:     mockspacefeed.NewMockClient(ctrl),
		weather:   mockweather.NewMockClient(ctrl),
		earth:     mockearth.NewMockVisualizer(ctrl),
		status:    mockstatus.NewMockMonitor(ctrl),
		rag:       mockrag.NewMockEngine(ctrl),
		assistant: mockassistant.NewMockAssistant(ctrl),
		profile:   mockprofile.NewMockService(ctrl),
		snapshots: mocksnapshot.NewMockRecorder(ctrl),
	}
	deps := v1handler.Deps{
		Feeds:     m.feeds,
		Weather:   m.weather,
		Earth:     m.earth,
		Status:    m.status,
		RAG:       m.rag,
		Assistant: m.assistant,
	}
	if withDB {
		deps.Profile = m.profile
		deps.Snapshots = m.snapshots
	}

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)
	uid := uuid.New()
	now := time.Now()

	mux := http.NewServeMux()
	v1handler.New(deps).Register(mux, sec)

	return &testServer{
		mux:   mux,
		m:     m,
		token: signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)),
		user:  domain.UserID(uid),
	}
}

func (s *testServer) do(t *testing.T, method, target, body string, auth bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec, out
}

func TestFeedRoutes(t *testing.T) {
	s := newTestServer(t, false)

	var iss domain.ISSPosition
	iss.Message = "success"
	iss.Position.Latitude = "12.5"
	s.m.feeds.EXPECT().ISSLocation(gomock.Any()).Return(remote.Live(iss))
	s.m.feeds.EXPECT().SolarActivity(gomock.Any()).
		Return(remote.Degrade(domain.SolarActivity{}, remote.StatusError))
	s.m.feeds.EXPECT().NasaAPOD(gomock.Any()).
		Return(remote.Degrade(domain.APOD{Title: "Offline"}, remote.StatusSimulated))

	rec, body := s.do(t, http.MethodGet, "/api/iss", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "live", body["_status"])
	require.Equal(t, "remote-api", body["_origin"])
	require.Equal(t, "success", body["message"])

	rec, body = s.do(t, http.MethodGet, "/api/solar", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "error", body["_status"])
	require.Equal(t, "gateway-error", body["_origin"])

	rec, body = s.do(t, http.MethodGet, "/api/nasa-apod", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "simulated", body["_status"])
	require.Equal(t, "Offline", body["title"])
}

func TestWeather(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "missing lat", query: "?lon=2", expected: http.StatusBadRequest},
		{name: "invalid lon", query: "?lat=1&lon=east", expected: http.StatusBadRequest},
		{name: "out of range", query: "?lat=91&lon=0", expected: http.StatusBadRequest},
		{name: "valid", query: "?lat=48.85&lon=2.35", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, false)
			if tt.expected == http.StatusOK {
				s.m.weather.EXPECT().Current(gomock.Any(), 48.85, 2.35).
					Return(remote.Live(domain.Weather{}))
			}

			rec, body := s.do(t, http.MethodGet, "/api/weather"+tt.query, "", false)
			require.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusBadRequest {
				require.Equal(t, serrors.ErrBadRequest.Error(), body["code"])
			}
		})
	}
}

func TestEarth(t *testing.T) {
	s := newTestServer(t, false)

	rec, _ := s.do(t, http.MethodGet, "/api/earth?mode=CLIMATE", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	s.m.earth.EXPECT().Report(gomock.Any(), "Paris", "NOPE").
		Return(remote.Result[domain.LocationReport]{}, serrors.With(serrors.ErrBadRequest, "unknown mode"))
	rec, body := s.do(t, http.MethodGet, "/api/earth?city=Paris&mode=NOPE", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "unknown mode", body["message"])

	s.m.earth.EXPECT().Report(gomock.Any(), "Paris", "CLIMATE").
		Return(remote.Live(domain.LocationReport{}), nil)
	rec, body = s.do(t, http.MethodGet, "/api/earth?city=Paris&mode=CLIMATE", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "live", body["_status"])
}

func TestSystemStatusAndRAG(t *testing.T) {
	s := newTestServer(t, false)

	s.m.status.EXPECT().Status(gomock.Any()).Return(domain.SystemStatus{
		Gateway: domain.GatewayOnline, ISS: "live", Solar: "error", Database: "simulated", Assistant: "live",
	})
	rec, body := s.do(t, http.MethodGet, "/api/status", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.GatewayOnline, body["gateway"])
	require.Equal(t, "error", body["solar"])

	rec, _ = s.do(t, http.MethodGet, "/rag", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	s.m.rag.EXPECT().Ask(gomock.Any(), "what is a nebula").
		Return(remote.Live(domain.RAGAnswer{Answer: "a cloud", Sources: []string{"nebula.txt"}}))
	rec, body = s.do(t, http.MethodGet, "/rag?q=what+is+a+nebula", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "a cloud", body["answer"])
	require.Equal(t, []any{"nebula.txt"}, body["sources"])
}

func TestChat(t *testing.T) {
	s := newTestServer(t, false)

	rec, _ := s.do(t, http.MethodPost, "/v1/chat", `{"message":"  "}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/v1/chat", `{"message":"hi","unknown":1}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/v1/chat", `{"message":"hi","history":[{"role":"system","text":"x"}]}`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	s.m.assistant.EXPECT().
		Chat(gomock.Any(), "hi", []domain.ChatTurn{{Role: domain.RoleUser, Text: "hello"}}).
		Return(remote.Live("greetings, explorer"))
	rec, body := s.do(t, http.MethodPost, "/v1/chat", `{"message":"hi","history":[{"role":"user","text":"hello"}]}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "greetings, explorer", body["text"])
	require.Equal(t, "live", body["_status"])
}

func TestTutor(t *testing.T) {
	s := newTestServer(t, false)

	s.m.assistant.EXPECT().StartTutor(gomock.Any(), "black holes").Return("session-1", nil)
	rec, body := s.do(t, http.MethodPost, "/v1/tutor/sessions", `{"topic":"black holes"}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "session-1", body["session_id"])

	s.m.assistant.EXPECT().Tutor(gomock.Any(), "missing", "hello").
		Return(remote.Result[domain.MasteryResponse]{}, serrors.With(serrors.ErrNotFound, "tutor session not found"))
	rec, _ = s.do(t, http.MethodPost, "/v1/tutor/sessions/missing/messages", `{"message":"hello"}`, false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	s.m.assistant.EXPECT().Tutor(gomock.Any(), "session-1", "ready").
		Return(remote.Live(domain.MasteryResponse{CurrentState: domain.TutorQuestion}), nil)
	rec, body = s.do(t, http.MethodPost, "/v1/tutor/sessions/session-1/messages", `{"message":"ready"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "live", body["_status"])
}

func TestStellarImageAndInsights(t *testing.T) {
	s := newTestServer(t, false)

	rec, _ := s.do(t, http.MethodGet, "/v1/stellar-image", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	s.m.assistant.EXPECT().StellarImage(gomock.Any(), "red giant").
		Return(remote.Degrade("https://example.com/a.jpg", remote.StatusSimulated))
	rec, body := s.do(t, http.MethodGet, "/v1/stellar-image?prompt=red+giant", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://example.com/a.jpg", body["url"])
	require.Equal(t, "simulated", body["_status"])

	s.m.assistant.EXPECT().MissionInsight(gomock.Any(), "Artemis", "lunar return").
		Return(remote.Live("bold"))
	rec, body = s.do(t, http.MethodPost, "/v1/insights/mission", `{"name":"Artemis","description":"lunar return"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bold", body["text"])

	s.m.assistant.EXPECT().MetricInsight(gomock.Any(), "Kp", "5", "storm", "up").
		Return(remote.Degrade("Metric normal.", remote.StatusSimulated))
	rec, body = s.do(t, http.MethodPost, "/v1/insights/metric",
		`{"label":"Kp","value":"5","context":"storm","trend":"up"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Metric normal.", body["text"])

	s.m.assistant.EXPECT().SearchEvents(gomock.Any(), "eclipse").Return(remote.Live("April 8"))
	rec, body = s.do(t, http.MethodPost, "/v1/events/search", `{"query":"eclipse"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "April 8", body["text"])
}

func TestProfileRoutes(t *testing.T) {
	s := newTestServer(t, true)

	rec, body := s.do(t, http.MethodGet, "/v1/profile", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, serrors.ErrUnauthorized.Error(), body["code"])

	p := &domain.Profile{ID: s.user, Username: "New Explorer", CredentialsLevel: domain.DefaultCredLevel}
	s.m.profile.EXPECT().Get(gomock.Any(), s.user).Return(p, nil)
	rec, body = s.do(t, http.MethodGet, "/v1/profile", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "New Explorer", body["username"])

	name := "Vega"
	s.m.profile.EXPECT().Update(gomock.Any(), s.user, domain.ProfilePatch{Username: &name}).
		Return(&domain.Profile{ID: s.user, Username: name}, nil)
	rec, body = s.do(t, http.MethodPatch, "/v1/profile", `{"username":"Vega"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Vega", body["username"])

	rec, _ = s.do(t, http.MethodPost, "/v1/profile/mastery", `{}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	s.m.profile.EXPECT().RecordMastery(gomock.Any(), s.user, 95).
		Return(&domain.Profile{ID: s.user, MasteryScore: 95, CredentialsLevel: "COMMANDER"}, nil)
	rec, body = s.do(t, http.MethodPost, "/v1/profile/mastery", `{"score":95}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "COMMANDER", body["credentials_level"])
}

func TestDatabaseRoutesWithoutDatabase(t *testing.T) {
	s := newTestServer(t, false)

	rec, body := s.do(t, http.MethodGet, "/v1/profile", "", true)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, serrors.ErrUnavailable.Error(), body["code"])

	rec, _ = s.do(t, http.MethodGet, "/v1/feeds/iss/history", "", false)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFeedHistory(t *testing.T) {
	s := newTestServer(t, true)

	rec, _ := s.do(t, http.MethodGet, "/v1/feeds/iss/history?limit=-1", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	cursor := "2025-01-01T00:00:00Z"
	s.m.snapshots.EXPECT().History(gomock.Any(), domain.FeedISS, cursor, uint(5)).
		Return([]domain.FeedSnapshot{{ID: 1, Feed: domain.FeedISS, Status: "live", Payload: json.RawMessage(`{}`)}},
			"2024-12-31T23:55:00Z", nil)
	rec, body := s.do(t, http.MethodGet, "/v1/feeds/iss/history?limit=5&cursor="+cursor, "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["snapshots"], 1)
	require.Equal(t, "2024-12-31T23:55:00Z", body["next_cursor"])

	s.m.snapshots.EXPECT().History(gomock.Any(), domain.Feed("mars"), "", uint(0)).
		Return(nil, "", serrors.With(serrors.ErrNotFound, "unknown feed"))
	rec, _ = s.do(t, http.MethodGet, "/v1/feeds/mars/history", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshFeeds(t *testing.T) {
	s := newTestServer(t, true)

	rec, _ := s.do(t, http.MethodPost, "/v1/feeds/refresh", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	s.m.snapshots.EXPECT().RequestRefresh(gomock.Any()).Return(true, nil)
	rec, body := s.do(t, http.MethodPost, "/v1/feeds/refresh", "", true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, true, body["enqueued"])
}
