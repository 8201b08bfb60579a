// Package errs defines the error kinds shared by the lending domain.
//
// Every business failure is an *Error carrying a Kind. Sentinels match by kind, so
// errors.Is(err, errs.ErrInvalidState) holds for any invalid-state failure while
// errors.Is(err, payment.ErrAlreadyPaid) still matches the specific one.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindPersistence  Kind = "persistence"
)

// Kind-level sentinels.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrInvalidState = &Error{Kind: KindInvalidState}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrPersistence  = &Error{Kind: KindPersistence}
)

type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Err     error
}

func New(kind Kind, entity, msg string) *Error {
	return &Error{Kind: kind, Entity: entity, Message: msg}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: entity + " not found"}
}

func Validation(entity, msg string) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Message: msg}
}

func InvalidState(entity, msg string) *Error {
	return &Error{Kind: KindInvalidState, Entity: entity, Message: msg}
}

func Conflict(entity, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: msg}
}

// Persistence wraps a storage failure so callers can retry it.
func Persistence(entity string, err error) *Error {
	return &Error{Kind: KindPersistence, Entity: entity, Message: "storage failure", Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches kind sentinels (no message) by kind, and specific errors by identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" && t.Entity == "" && t.Err == nil {
		return e.Kind == t.Kind
	}
	return e == t
}

// Wrap returns a copy of e carrying cause, keeping e matchable via errors.Is.
func (e *Error) Wrap(cause error) error {
	return &wrapped{base: e, cause: cause}
}

type wrapped struct {
	base  *Error
	cause error
}

func (w *wrapped) Error() string  { return fmt.Sprintf("%s: %v", w.base.Error(), w.cause) }
func (w *wrapped) Unwrap() []error { return []error{w.base, w.cause} }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Message returns the user-facing message of the first *Error in err's chain.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
