package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPrincipalNotFound is returned by lookups that match no row.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrDuplicatePrincipal is returned by stores when an insert trips a unique constraint.
	ErrDuplicatePrincipal = errors.New("duplicate principal")
	// ErrPrincipalExists is the classification every Conflict outcome unwraps to.
	ErrPrincipalExists = errors.New("principal already exists")
	// ErrStorage is the classification every StorageError unwraps to.
	ErrStorage = errors.New("storage failure")

	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedUpload = errors.New("unsupported upload content type")
	ErrUploadTooLarge    = errors.New("upload exceeds maximum size")
)

// ConflictError reports a unique-key collision. Existing is nil when the
// collision was only detected by the store constraint and the colliding row
// could not be re-read.
type ConflictError struct {
	Kind     Kind
	Key      UniqueKey
	Existing *Identity
}

func (e *ConflictError) Error() string {
	if e.Key.Email != "" {
		return fmt.Sprintf("%s with username %q or email %q already exists", e.Kind, e.Key.Username, e.Key.Email)
	}
	return fmt.Sprintf("%s with username %q already exists", e.Kind, e.Key.Username)
}

func (e *ConflictError) Unwrap() error { return ErrPrincipalExists }

// StorageError wraps a connectivity or unexpected database failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// NewStorageError wraps err unless it is nil or already a StorageError.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
