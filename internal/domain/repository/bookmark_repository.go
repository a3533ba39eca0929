package repository

import (
	"context"
	"errors"

	"bookmarks/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when no bookmark matches the given ID.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository persists bookmarks. It does not enforce ownership; callers
// consult the ownership policy before mutating.
type BookmarkRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Bookmark, error)

	// FindByOwner lists the bookmarks of one user, newest first.
	FindByOwner(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Update(ctx context.Context, bookmark *entity.Bookmark) error
	Delete(ctx context.Context, id int64) error
}
