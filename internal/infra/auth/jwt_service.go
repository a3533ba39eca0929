package auth

import (
	"log/slog"
	"strconv"
	"time"

	"bookmarks/config"
	"bookmarks/internal/domain/service"
	"bookmarks/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the payload of an access token. Subject holds the decimal user ID.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	logger *slog.Logger
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. The signing secret is copied
// out of the configuration once and never changes afterwards.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	svc, err := newJWTService(cfg.SecretKey.Access, logger, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

// NewJWTServiceWithClock builds a TokenService that reads the current time from now.
func NewJWTServiceWithClock(secret string, logger *slog.Logger, now func() time.Time) (service.TokenService, error) {
	svc, err := newJWTService(secret, logger, now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, logger *slog.Logger, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		logger: logger,
		now:    now,
	}, nil
}

// Issue signs a token for the user, valid from now until now+ttl.
func (s *jwtService) Issue(userID int64, email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiryCeil(now.Add(ttl))),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Verify returns the subject of a well-formed, correctly signed and unexpired token.
// Every failure is reported as service.ErrInvalidToken.
func (s *jwtService) Verify(token string) (*service.TokenSubject, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(time.Second),
		jwt.WithTimeFunc(s.now),
	)

	claims := &accessClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		s.logger.Debug("Token rejected", slog.String("reason", err.Error()))

		return nil, service.ErrInvalidToken
	}

	// The parser accepts now < exp+leeway; the token stays valid through exp itself.
	if s.now().After(claims.ExpiresAt.Time) {
		s.logger.Debug("Token rejected", slog.String("reason", "token has expired"))

		return nil, service.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		s.logger.Debug("Token rejected", slog.String("reason", "invalid subject"))

		return nil, service.ErrInvalidToken
	}

	subject := &service.TokenSubject{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		subject.IssuedAt = claims.IssuedAt.Time
	}

	return subject, nil
}

// expiryCeil rounds t up to the whole second carried by the exp claim.
func expiryCeil(t time.Time) time.Time {
	if truncated := t.Truncate(time.Second); !truncated.Equal(t) {
		return truncated.Add(time.Second)
	}

	return t
}
