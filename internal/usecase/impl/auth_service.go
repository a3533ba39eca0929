// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookmarks/internal/delivery/context"
	domainerrors "bookmarks/internal/domain/errors"
	"bookmarks/internal/domain/repository"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"
	"bookmarks/internal/usecase"

	"go.uber.org/fx"
)

// unknownEmailHash is checked against when the email is unknown, so a failed
// sign-in costs one argon2id computation whether or not the account exists.
const unknownEmailHash = "$argon2id$v=19$m=65536,t=3,p=2$c29tZXNhbHRzb21lc2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup stores a new account and signs the caller in.
func (srv *authService) Signup(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Signing up", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := srv.userRepo.Create(ctx, input.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup rejected, email already registered", slog.String("email", input.Email))

			return nil, errors.WithStack(domainerrors.ErrDuplicateAccount)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Signup completed", slog.Int64("userID", user.ID))

	return srv.issue(user.ID, user.Email)
}

// Signin checks the password against the stored hash.
func (srv *authService) Signin(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	credential, err := srv.userRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	if credential == nil {
		srv.hasher.Check(input.Password, unknownEmailHash)
		srv.log(ctx).Warn("Signin rejected", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Signin rejected", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Debug("Signin completed", slog.Int64("userID", credential.UserID))

	return srv.issue(credential.UserID, credential.Email)
}

func (srv *authService) issue(userID int64, email string) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(userID, email, service.AccessTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{AccessToken: token}, nil
}
