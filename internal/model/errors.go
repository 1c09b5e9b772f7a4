package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies entity operation failures.
type ErrorKind int

const (
	// KindInvalidRequest marks a guard rejection: missing entity, blank ID,
	// or blank required field. Never retried.
	KindInvalidRequest ErrorKind = iota + 1

	// KindNotFound marks a point lookup or delete for an ID that does not exist.
	KindNotFound

	// KindPersistenceUnavailable marks a store call that failed after the
	// resilience policy was exhausted, or while the circuit is open.
	KindPersistenceUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	case KindPersistenceUnavailable:
		return "persistence_unavailable"
	default:
		return "unknown"
	}
}

// Error is the domain error returned by entity services. Entity names the
// family ("area", "room", ...), ID is a best-effort identifier for
// diagnostics, and Err carries the triggering cause when one exists.
type Error struct {
	Kind   ErrorKind
	Entity string
	ID     string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Entity, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.ID != "" {
		msg += fmt.Sprintf(" (id=%s)", e.ID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the triggering cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind, so callers can compare against
// a kind prototype with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// NewInvalidRequest builds a guard rejection for an entity family.
func NewInvalidRequest(entity, reason string) *Error {
	return &Error{Kind: KindInvalidRequest, Entity: entity, Reason: reason}
}

// NewNotFound builds a not-found error for a point lookup or delete.
func NewNotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// NewPersistenceUnavailable wraps a store failure, keeping the original cause
// and a best-effort identifier for diagnostics.
func NewPersistenceUnavailable(entity, id string, cause error) *Error {
	return &Error{Kind: KindPersistenceUnavailable, Entity: entity, ID: id, Err: cause}
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsInvalidRequest reports whether err is a guard rejection.
func IsInvalidRequest(err error) bool { return IsKind(err, KindInvalidRequest) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsPersistenceUnavailable reports whether err is a store failure surfaced
// after the resilience policy was exhausted.
func IsPersistenceUnavailable(err error) bool { return IsKind(err, KindPersistenceUnavailable) }
