// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// principalFrom returns nil when no principal was set; use cases reject that
// with ErrUnauthenticated.
func principalFrom(c echo.Context) *entity.Principal {
	principal, _ := deliverycontext.GetPrincipal(c)

	return principal
}
