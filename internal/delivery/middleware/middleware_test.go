package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookmarks/config"
	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenCtx context.Context
	handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
		seenCtx = c.Request().Context()

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id-1", deliverycontext.GetRequestID(c))
	assert.Equal(t, "client-id-1", deliverycontext.GetRequestIDFromContext(seenCtx))
	assert.NotNil(t, deliverycontext.GetLogger(seenCtx))
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	for _, id := range []string{"", "has space", strings.Repeat("x", maxRequestIDLength+1)} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(echo.Context) error {
			return nil
		})

		require.NoError(t, handler(c))
		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, id, got)
		assert.Len(t, got, 36)
	}
}

func TestLoggerMiddleware_LogsOnlyInDebug(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantLog bool
	}{
		{name: "debug", debug: true, wantLog: true},
		{name: "quiet", debug: false, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/bookmarks?limit=1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			deliverycontext.SetPrincipal(c, &entity.Principal{ID: 42})

			handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			})
			require.NoError(t, handler(c))

			if !tt.wantLog {
				assert.Zero(t, buf.Len())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "WARN", entry["level"])
			assert.Equal(t, "/bookmarks", entry["uri"])
			assert.Equal(t, "limit=1", entry["query"])
			assert.EqualValues(t, 42, entry["user_id"])
			assert.EqualValues(t, http.StatusNotFound, entry["status"])
		})
	}
}
