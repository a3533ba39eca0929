package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"
)

// UpdateProfileInput holds the profile fields to change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserUsecase serves the profile of the authenticated user.
type UserUsecase interface {
	GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error)
	UpdateProfile(ctx context.Context, principal *entity.Principal, input *UpdateProfileInput) (*entity.User, error)
}
