package entity

// Credential is the email/password pair of a user as held by the user store.
// It only ever travels between the store and the credential verifier.
type Credential struct {
	UserID       int64
	Email        string
	PasswordHash string
}

// Principal is the identity resolved for the current request. It is rebuilt on
// every request from a verified token and a fresh user lookup, and never persisted.
type Principal struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
