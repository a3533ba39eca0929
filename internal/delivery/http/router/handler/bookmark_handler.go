package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookmarks/internal/delivery/http/response"
	"bookmarks/internal/domain/entity"
	"bookmarks/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookmarkHandlerParams holds dependencies for BookmarkHandler, injected by Fx.
type BookmarkHandlerParams struct {
	fx.In

	BookmarkUC usecase.BookmarkUsecase
	Logger     *slog.Logger
}

// BookmarkHandler holds dependencies for bookmark-related handlers
type BookmarkHandler struct {
	bookmarkUC usecase.BookmarkUsecase
	logger     *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler
func NewBookmarkHandler(params BookmarkHandlerParams) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkUC: params.BookmarkUC,
		logger:     params.Logger,
	}
}

// CreateBookmarkRequest represents the request body for POST /bookmarks
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Link        string `json:"link" validate:"required,url"`
}

// UpdateBookmarkRequest represents the request body for PATCH /bookmarks/:id
type UpdateBookmarkRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Link        *string `json:"link" validate:"omitempty,url"`
}

// List returns the caller's bookmarks, newest first.
func (h *BookmarkHandler) List(c echo.Context) error {
	bookmarks, err := h.bookmarkUC.List(c.Request().Context(), principalFrom(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if bookmarks == nil {
		bookmarks = []*entity.Bookmark{}
	}

	return response.Success(c, http.StatusOK, bookmarks)
}

// Create saves a bookmark owned by the caller.
func (h *BookmarkHandler) Create(c echo.Context) error {
	var req CreateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	bookmark, err := h.bookmarkUC.Create(c.Request().Context(), principalFrom(c), &usecase.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) Get(c echo.Context) error {
	id, ok := bookmarkID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	bookmark, err := h.bookmarkUC.Get(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookmark)
}

func (h *BookmarkHandler) Update(c echo.Context) error {
	id, ok := bookmarkID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	var req UpdateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	bookmark, err := h.bookmarkUC.Update(c.Request().Context(), principalFrom(c), id, &usecase.UpdateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookmark)
}

func (h *BookmarkHandler) Delete(c echo.Context) error {
	id, ok := bookmarkID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	if err := h.bookmarkUC.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QRCode renders the bookmark link as a PNG.
func (h *BookmarkHandler) QRCode(c echo.Context) error {
	id, ok := bookmarkID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	png, err := h.bookmarkUC.QRCode(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func bookmarkID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
