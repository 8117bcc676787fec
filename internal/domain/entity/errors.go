package entity

import "errors"

var (
	// ErrNotFound is returned by lookups when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a registration already exists for an email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned on an operator login mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStoreUnavailable wraps transport failures talking to a remote store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotSupported is returned by store variants that do not implement an operation.
	ErrNotSupported = errors.New("operation not supported")
)
