package blog

import (
	"errors"
	"fmt"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

// The service layer is the single translation point between storage
// failures and caller-facing errors. The view layer catches only these
// types, never raw persistence errors.

type CreateError struct {
	Entity string
	Err    error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Entity, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

type UpdateError struct {
	Entity string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update %s: %v", e.Entity, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

type DeleteError struct {
	Entity string
	Err    error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Entity, e.Err)
}

func (e *DeleteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err wraps a missing-record failure.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
