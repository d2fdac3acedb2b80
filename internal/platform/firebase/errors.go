package firebase

import (
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"github.com/phrazzld/tasklist/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapAuthError converts an Admin SDK auth error into a store error.
func mapAuthError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case auth.IsEmailAlreadyExists(err):
		return store.ErrEmailExists
	case auth.IsUserNotFound(err):
		return store.ErrUserNotFound
	case errorutils.IsInvalidArgument(err):
		return fmt.Errorf("%w: %s", store.ErrInvalidEntity, err.Error())
	default:
		return store.NewStoreError("account", op, "identity provider request failed", err)
	}
}

// mapFirestoreError converts a Firestore error into a store error. notFound
// is returned for codes.NotFound.
func mapFirestoreError(entity, op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}
		return store.ErrNotFound
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", store.ErrDuplicate, entity)
	case codes.InvalidArgument, codes.FailedPrecondition:
		return store.NewStoreError(entity, op, "request rejected", errors.Join(store.ErrInvalidEntity, err))
	default:
		return store.NewStoreError(entity, op, "document store request failed", err)
	}
}
