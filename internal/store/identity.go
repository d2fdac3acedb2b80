package store

import "context"

// IdentityProvider creates and looks up accounts. User IDs are opaque strings
// chosen by the provider.
type IdentityProvider interface {
	// CreateAccount registers a new account and returns its user ID.
	// Returns ErrEmailExists if the email is already registered, or an error
	// wrapping ErrInvalidEntity if the provider rejects the credentials.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// LookupByEmail returns the user ID registered under email.
	// Returns ErrUserNotFound if no account matches.
	LookupByEmail(ctx context.Context, email string) (string, error)

	// VerifyPassword checks the password of the account registered under
	// email and returns its user ID.
	// Returns ErrUserNotFound or ErrInvalidCredentials on failure, and
	// ErrUnsupported if the provider cannot verify passwords.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}
