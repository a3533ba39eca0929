// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// CredentialsInput is the email/password pair presented at signup and signin.
type CredentialsInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the access token issued after a successful signup or signin.
// It never contains user data.
type AuthOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase verifies credentials and issues access tokens.
type AuthUsecase interface {
	// Signup creates an account and returns a token for it. An email that is
	// already registered fails with ErrDuplicateAccount.
	Signup(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)

	// Signin fails with ErrInvalidCredentials for an unknown email and for a wrong
	// password alike.
	Signin(ctx context.Context, input *CredentialsInput) (*AuthOutput, error)
}
