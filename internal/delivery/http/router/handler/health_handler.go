package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReadinessChecker reports whether the backing store can serve requests.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Checker ReadinessChecker
	Logger  *slog.Logger
}

type HealthHandler struct {
	checker ReadinessChecker
	logger  *slog.Logger
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		checker: params.Checker,
		logger:  params.Logger,
	}
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings the database.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.checker.Ready(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Readiness check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ready"})
}
