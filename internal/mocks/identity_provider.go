package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist/internal/store"
)

// Account is an account held by MockIdentityProvider.
type Account struct {
	ID       string
	Email    string
	Password string
}

// MockIdentityProvider implements store.IdentityProvider for testing
type MockIdentityProvider struct {
	// Function fields for customizable behavior
	CreateAccountFn  func(ctx context.Context, email, password string) (string, error)
	LookupByEmailFn  func(ctx context.Context, email string) (string, error)
	VerifyPasswordFn func(ctx context.Context, email, password string) (string, error)

	// Data for default implementation, keyed by email
	Accounts map[string]*Account

	// MinPasswordLength mimics a provider-side password rule. Zero disables it.
	MinPasswordLength int
	CreateError       error
}

// NewMockIdentityProvider creates a new mock provider with initialized defaults
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		Accounts: make(map[string]*Account),
	}
}

// CreateAccount implements the IdentityProvider interface
func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, email, password)
	}
	if m.CreateError != nil {
		return "", m.CreateError
	}
	if _, exists := m.Accounts[email]; exists {
		return "", store.ErrEmailExists
	}
	if m.MinPasswordLength > 0 && len(password) < m.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters",
			store.ErrInvalidEntity, m.MinPasswordLength)
	}

	acct := &Account{ID: uuid.NewString(), Email: email, Password: password}
	m.Accounts[email] = acct
	return acct.ID, nil
}

// LookupByEmail implements the IdentityProvider interface
func (m *MockIdentityProvider) LookupByEmail(ctx context.Context, email string) (string, error) {
	if m.LookupByEmailFn != nil {
		return m.LookupByEmailFn(ctx, email)
	}
	acct, exists := m.Accounts[email]
	if !exists {
		return "", store.ErrUserNotFound
	}
	return acct.ID, nil
}

// VerifyPassword implements the IdentityProvider interface
func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	if m.VerifyPasswordFn != nil {
		return m.VerifyPasswordFn(ctx, email, password)
	}
	acct, exists := m.Accounts[email]
	if !exists {
		return "", store.ErrUserNotFound
	}
	if acct.Password != password {
		return "", store.ErrInvalidCredentials
	}
	return acct.ID, nil
}
