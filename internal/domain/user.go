package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User is the profile record written once at registration. The ID is
// whatever opaque identifier the identity provider assigned.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// Credentials are the email/password pair collected at the console.
// The password is never stored on a User.
type Credentials struct {
	Email    string
	Password string
}

// NewCredentials trims the email and checks that neither part is empty.
// Password rules beyond that belong to the identity provider.
func NewCredentials(email, password string) (Credentials, error) {
	c := Credentials{Email: strings.TrimSpace(email), Password: password}
	if c.Email == "" {
		return Credentials{}, NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}
	if c.Password == "" {
		return Credentials{}, NewValidationError("password", "cannot be empty", ErrEmptyPassword)
	}
	return c, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == "" {
		return NewValidationError("user_id", "cannot be empty", ErrEmptyUserID)
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}
	return nil
}
