package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"spacescope/internal/api/handler/v1handler"
	"spacescope/pkg/logger"
	"spacescope/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "plain error is internal",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "internal error",
		},
		{
			name:        "bare kind uses default message",
			err:         serrors.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "resource not found",
		},
		{
			name:        "message is surfaced",
			err:         serrors.With(serrors.ErrBadRequest, "invalid payload: missing city"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "BAD_REQUEST",
			wantMessage: "invalid payload: missing city",
		},
		{
			name:        "cause is hidden",
			err:         serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "unauthorized",
		},
		{
			name:        "kind survives fmt wrapping",
			err:         fmt.Errorf("could not load profile: %w", serrors.With(serrors.ErrUnavailable, "database is not configured")),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    "UNAVAILABLE",
			wantMessage: "database is not configured",
		},
		{
			name:        "kind only",
			err:         serrors.KindOnly(serrors.ErrTimeout),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    "TIMEOUT",
			wantMessage: "timed out",
		},
		{
			name:        "internal kind is not echoed",
			err:         serrors.With(serrors.ErrInternal, "secret detail"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL",
			wantMessage: "internal error",
		},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.wantStatus, res.StatusCode)
			require.Equal(t, tt.wantCode, res.Response.Code)
			require.Equal(t, tt.wantMessage, res.Response.Message)
		})
	}
}
