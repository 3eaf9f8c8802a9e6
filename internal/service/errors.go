package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrStore              = errors.New("store failure")
	ErrStorageDisabled    = errors.New("photo storage is disabled")
)

const genericStoreMessage = "internal error"

// Error carries a taxonomy kind (one of the sentinels above), a message that
// is safe to show to clients and, for store failures, the underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// PublicMessage returns the client-facing message for err. Store failures and
// unknown errors never expose their cause.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && !errors.Is(se.Kind, ErrStore) {
		return se.Message
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return ErrInvalidCredentials.Error()
	}
	return genericStoreMessage
}

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func conflictError(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func storeError(op string, err error) error {
	return &Error{Kind: ErrStore, Message: genericStoreMessage, Err: fmt.Errorf("%s: %w", op, err)}
}
