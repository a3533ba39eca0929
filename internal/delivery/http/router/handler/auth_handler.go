package handler

import (
	"log/slog"
	"net/http"

	"bookmarks/internal/delivery/http/response"
	"bookmarks/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup and signin.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// CredentialsRequest is the body of both /auth/signup and /auth/signin.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles account creation
func (h *AuthHandler) Signup(c echo.Context) error {
	input, err := h.bindCredentials(c)
	if err != nil || input == nil {
		return err
	}

	out, err := h.authUC.Signup(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// Signin handles password sign-in
func (h *AuthHandler) Signin(c echo.Context) error {
	input, err := h.bindCredentials(c)
	if err != nil || input == nil {
		return err
	}

	out, err := h.authUC.Signin(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// bindCredentials returns a nil input once it has already written a 400.
func (h *AuthHandler) bindCredentials(c echo.Context) (*usecase.CredentialsInput, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationFailed(c, err)
	}

	return &usecase.CredentialsInput{
		Email:    req.Email,
		Password: req.Password,
	}, nil
}
