// Package v1handler implements the HTTP handlers of the gateway: the public
// /api feed routes, the /rag route and the versioned /v1 routes.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"spacescope/internal/assistant"
	"spacescope/internal/earth"
	"spacescope/internal/profile"
	"spacescope/internal/rag"
	"spacescope/internal/snapshot"
	"spacescope/internal/status"
	"spacescope/pkg/controller"
	"spacescope/pkg/logger"
	"spacescope/pkg/serrors"
	"spacescope/pkg/spacefeed"
	"spacescope/pkg/weather"

	"go.uber.org/zap"
)

// Deps are the services behind the handlers. A nil Profile or Snapshots
// disables the routes that need the database.
type Deps struct {
	Feeds     spacefeed.Client
	Weather   weather.Client
	Earth     earth.Visualizer
	Status    status.Monitor
	RAG       rag.Engine
	Assistant assistant.Assistant
	Profile   profile.Service
	Snapshots snapshot.Recorder
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is an error rendered by NewError.
type ErrorResponse struct {
	StatusCode int
	Response   controller.ErrorBody
}

type kindStatus struct {
	status  int
	message string
}

// kindStatuses maps semantic error kinds to HTTP responses. The message is
// used when the error carries none.
var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "timed out"},
}

// NewError maps err to an HTTP status and a {code, message} body. Errors
// without a known kind, and ErrInternal, are logged and answered with
// 500 "internal error".
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	if kind, ok := serrors.KindOf(err); ok {
		if ks, known := kindStatuses[kind]; known {
			message := ks.message
			var serr *serrors.Error
			if errors.As(err, &serr) && serr.Message() != "" {
				message = serr.Message()
			}
			logger.Debug(ctx, "request failed", zap.Error(err))

			return &ErrorResponse{
				StatusCode: ks.status,
				Response:   controller.ErrorBody{Code: kind.Error(), Message: message},
			}
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response: controller.ErrorBody{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	controller.WriteJSON(w, r, res.StatusCode, res.Response)
}

// Register adds every route to mux. Routes needing a bearer token go
// through sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	// public gateway routes
	mux.HandleFunc("GET /api/iss", h.ISS)
	mux.HandleFunc("GET /api/solar", h.Solar)
	mux.HandleFunc("GET /api/nasa-apod", h.APOD)
	mux.HandleFunc("GET /api/spacex", h.SpaceX)
	mux.HandleFunc("GET /api/techport", h.TechPort)
	mux.HandleFunc("GET /api/weather", h.Weather)
	mux.HandleFunc("GET /api/earth", h.Earth)
	mux.HandleFunc("GET /api/status", h.SystemStatus)
	mux.HandleFunc("GET /rag", h.RAG)

	// v1
	mux.HandleFunc("POST /v1/chat", h.Chat)
	mux.HandleFunc("POST /v1/tutor/sessions", h.StartTutor)
	mux.HandleFunc("POST /v1/tutor/sessions/{id}/messages", h.TutorMessage)
	mux.HandleFunc("GET /v1/stellar-image", h.StellarImage)
	mux.HandleFunc("POST /v1/insights/mission", h.MissionInsight)
	mux.HandleFunc("POST /v1/insights/metric", h.MetricInsight)
	mux.HandleFunc("POST /v1/events/search", h.SearchEvents)
	mux.HandleFunc("GET /v1/feeds/{feed}/history", h.FeedHistory)
	mux.HandleFunc("POST /v1/feeds/refresh", sec.Authenticate("refreshFeeds", h, h.RefreshFeeds))
	mux.HandleFunc("GET /v1/profile", sec.Authenticate("getProfile", h, h.GetProfile))
	mux.HandleFunc("PATCH /v1/profile", sec.Authenticate("updateProfile", h, h.UpdateProfile))
	mux.HandleFunc("POST /v1/profile/mastery", sec.Authenticate("recordMastery", h, h.RecordMastery))
}
