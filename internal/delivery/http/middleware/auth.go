package middleware

import (
	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/delivery/http/response"
	"bookmarks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the bearer token of a request into a Principal.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identityUC usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identityUC: identityUC}
}

// Authenticate rejects the request with 401 unless the Authorization header
// resolves to a live user. The Principal is stored on both echo.Context and the
// request context.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		principal, err := m.identityUC.Resolve(req.Context(), req.Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetPrincipal(c, principal)
		c.SetRequest(req.WithContext(deliverycontext.WithPrincipal(req.Context(), principal)))

		return next(c)
	}
}
