package usecase

import (
	"context"

	"bookmarks/internal/domain/entity"
)

// IdentityUsecase turns an Authorization header into the Principal of the request.
type IdentityUsecase interface {
	// Resolve fails with ErrUnauthenticated when the header is missing or malformed,
	// the token does not verify, or its user no longer exists.
	Resolve(ctx context.Context, authorizationHeader string) (*entity.Principal, error)
}
