package service

import (
	"errors"

	"github.com/phrazzld/tasklist/internal/domain"
)

// Sentinel errors returned (wrapped) by service operations. Callers use
// errors.Is or KindOf to classify them.
var (
	// ErrAuth indicates the identity provider rejected a registration or sign-in.
	ErrAuth = errors.New("authentication failed")

	// ErrNotFoundOrForbidden indicates a task does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrNotFoundOrForbidden = errors.New("task not found or you don't have permission")

	// ErrBackend indicates an unexpected failure of the identity provider or
	// document store (network, permission, quota, ...).
	ErrBackend = errors.New("backend error")
)

// Kind classifies an error returned by a service operation.
type Kind int

// Error kinds, in the order KindOf checks them.
const (
	KindNone Kind = iota
	KindValidation
	KindAuth
	KindNotFoundOrForbidden
	KindBackend
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFoundOrForbidden:
		return "not_found_or_forbidden"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Errors not produced by this package count as
// backend errors; nil is KindNone.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrNotFoundOrForbidden):
		return KindNotFoundOrForbidden
	default:
		return KindBackend
	}
}
