package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "seely/internal/delivery/context"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail bool
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrStateMismatch, "callback"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "STATE_MISMATCH",
		},
		{
			name:       "joined authentication failure",
			err:        errors.Join(domainerrors.ErrAuthenticationFailed, domainerrors.ErrTokenExpired),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_FAILED",
		},
		{
			name:       "validation details are kept",
			err:        domainerrors.ErrValidationFailed.WithDetails("username is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantDetail: true,
		},
		{
			name:       "upstream",
			err:        domainerrors.ErrUpstream.WithDetails("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.Equal(t, tt.wantDetail, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "connection re")
		})
	}
}
