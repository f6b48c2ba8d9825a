package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *Error wraps exactly one of these so callers can branch
// with errors.Is while the message stays human-readable.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrAccessDenied    = errors.New("access denied")
	ErrUnauthenticated = errors.New("authentication failure")
	ErrForbidden       = errors.New("no required authorities")
	ErrConflict        = errors.New("conflict")
)

// Entity names used in error messages.
const (
	EntityUser     = "User"
	EntityNews     = "News"
	EntityComment  = "Comment"
	EntityCategory = "News category"
)

// Error is a domain failure carrying the message shown to API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound reports a missing entity looked up by id.
func NotFound(entity string, id int64) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s with id = '%d' not found", entity, id)}
}

// UsernameNotFound reports a missing user looked up by username.
func UsernameNotFound(username string) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("User with username = '%s' not found", username)}
}

// Validation joins field messages with "; ".
func Validation(msgs ...string) error {
	return &Error{Kind: ErrValidation, Message: strings.Join(msgs, "; ")}
}

// AccessDenied reports an ownership mismatch.
func AccessDenied(callerID int64, resource string, resourceID int64) error {
	return &Error{
		Kind:    ErrAccessDenied,
		Message: fmt.Sprintf("User with id = '%d' cannot get or change data of %s with id = '%d'", callerID, resource, resourceID),
	}
}

func Unauthenticated() error {
	return &Error{Kind: ErrUnauthenticated, Message: "Authentication failure"}
}

func Forbidden() error {
	return &Error{Kind: ErrForbidden, Message: "No required authorities"}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}
