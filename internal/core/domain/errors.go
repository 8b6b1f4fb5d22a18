package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of these so
// the transport layer can map it to a status with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrPersistence     = errors.New("persistence failure")
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrUserExists         = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrCourseNotFound     = fmt.Errorf("course %w", ErrNotFound)
	ErrCourseExists       = fmt.Errorf("%w: course code already exists", ErrConflict)
	ErrFavouriteNotFound  = fmt.Errorf("favourite %w", ErrNotFound)
	ErrFavouriteExists    = fmt.Errorf("%w: already favourited", ErrConflict)
)

// Invalid builds a validation error carrying a client-facing message.
func Invalid(format string, args ...any) error {
	return &KindError{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// Persistence reports a failed store call as ErrPersistence with a message
// naming the action, e.g. "Error adding course: <cause>". Errors that already
// carry a kind the API maps (not found, conflict, KindError) pass through.
func Persistence(action string, err error) error {
	var ke *KindError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.As(err, &ke) {
		return err
	}
	return &KindError{Kind: ErrPersistence, Msg: "Error " + action + ": " + err.Error(), Err: err}
}

// KindError pairs an error kind with the message shown to API clients.
type KindError struct {
	Kind error
	Msg  string
	// Err is the underlying cause, if any.
	Err error
}

func (e *KindError) Error() string { return e.Msg }

func (e *KindError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
