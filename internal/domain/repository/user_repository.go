// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookmarks/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a create or update would violate the unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindCredentialByEmail returns the stored credential for an email. It is the only
	// read path that exposes the password hash.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create persists a new user with the given password hash and returns it with its assigned ID.
	Create(ctx context.Context, email, passwordHash string) (*entity.User, error)

	// Update modifies the profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
