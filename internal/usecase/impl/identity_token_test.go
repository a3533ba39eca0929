package impl

import (
	"context"
	"testing"
	"time"

	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"
	"bookmarks/internal/infra/auth"
	mockRepo "bookmarks/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	return c.current
}

func createTokenBackedIdentityService(t *testing.T, clock *stepClock) (*identityService, *mockRepo.MockUserRepository, service.TokenService) {
	t.Helper()

	tokenService, err := auth.NewJWTServiceWithClock("resolver-secret", newDiscardLogger(), clock.Now)
	require.NoError(t, err)

	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewIdentityService(IdentityServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv.(*identityService), userRepo, tokenService
}

func TestIdentityService_Resolve_TokenLifetime(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 500_000_000, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantOK  bool
	}{
		{name: "fourteen minutes", elapsed: 14 * time.Minute, wantOK: true},
		{name: "just under fifteen minutes", elapsed: 15*time.Minute - 400*time.Millisecond, wantOK: true},
		{name: "exactly fifteen minutes", elapsed: 15 * time.Minute, wantOK: true},
		{name: "well past fifteen minutes", elapsed: 15*time.Minute + 2*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &stepClock{current: issuedAt}
			srv, userRepo, tokenService := createTokenBackedIdentityService(t, clock)

			token, err := tokenService.Issue(1, "a@x.com", service.AccessTokenTTL)
			require.NoError(t, err)

			clock.current = issuedAt.Add(tt.elapsed)
			if tt.wantOK {
				userRepo.EXPECT().FindByID(context.Background(), int64(1)).
					Return(&entity.User{ID: 1, Email: "a@x.com"}, nil).Once()
			}

			principal, err := srv.Resolve(context.Background(), "Bearer "+token)
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, &entity.Principal{ID: 1, Email: "a@x.com"}, principal)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
				assert.Nil(t, principal)
			}
		})
	}
}

func TestIdentityService_Resolve_AlteredSignature(t *testing.T) {
	clock := &stepClock{current: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	srv, _, tokenService := createTokenBackedIdentityService(t, clock)

	token, err := tokenService.Issue(1, "a@x.com", service.AccessTokenTTL)
	require.NoError(t, err)

	// Swap the first signature character for a different base64url character.
	sigStart := len(token) - 43
	swapped := byte('A')
	if token[sigStart] == 'A' {
		swapped = 'B'
	}
	tampered := token[:sigStart] + string(swapped) + token[sigStart+1:]

	_, err = srv.Resolve(context.Background(), "Bearer "+tampered)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
