package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"
)

// CreateBookmarkInput defines the data required to save a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        string
}

// UpdateBookmarkInput holds the bookmark fields to change. Nil fields are left untouched.
type UpdateBookmarkInput struct {
	Title       *string
	Description *string
	Link        *string
}

// BookmarkUsecase manages the bookmarks of the authenticated user.
//
// Every operation addressing a bookmark by ID reports a missing bookmark as
// ErrNotFound before checking ownership, and a bookmark owned by someone else
// as ErrForbidden.
type BookmarkUsecase interface {
	List(ctx context.Context, principal *entity.Principal) ([]*entity.Bookmark, error)
	Get(ctx context.Context, principal *entity.Principal, id int64) (*entity.Bookmark, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateBookmarkInput) (*entity.Bookmark, error)
	Update(ctx context.Context, principal *entity.Principal, id int64, input *UpdateBookmarkInput) (*entity.Bookmark, error)
	Delete(ctx context.Context, principal *entity.Principal, id int64) error

	// QRCode renders the bookmark link as a PNG image.
	QRCode(ctx context.Context, principal *entity.Principal, id int64) ([]byte, error)
}
