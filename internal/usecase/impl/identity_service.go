package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookmarks/internal/delivery/context"
	"bookmarks/internal/domain/entity"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"
	"bookmarks/internal/usecase"

	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Resolve verifies the bearer token and reloads its user. The Principal is built
// from the stored user, so a changed email takes effect before the token expires.
func (srv *identityService) Resolve(ctx context.Context, authorizationHeader string) (*entity.Principal, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	token, ok := parseBearerToken(authorizationHeader)
	if !ok {
		logger.Debug("Missing or malformed authorization header")

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByID(ctx, subject.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("Token refers to a missing user", slog.Int64("userID", subject.UserID))

			return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return &entity.Principal{ID: user.ID, Email: user.Email}, nil
}

// parseBearerToken accepts "Bearer <token>" with a case-insensitive scheme and
// exactly one non-empty token.
func parseBearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
