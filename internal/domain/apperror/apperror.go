// Package apperror defines the error kinds shared by validation rules, storage
// and the delivery layer. Every rejected operation names the invariant that failed.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindDuplicateKey     Kind = "duplicate_key"
	KindMissingField     Kind = "missing_field"
	KindInvalidRange     Kind = "invalid_range"
	KindPasswordMismatch Kind = "password_mismatch"
	KindNotFound         Kind = "not_found"
	KindStorageFailure   Kind = "storage_failure"
)

// Sentinels match any *Error of the same kind through errors.Is.
var (
	ErrDuplicateKey     = &Error{Kind: KindDuplicateKey}
	ErrMissingField     = &Error{Kind: KindMissingField}
	ErrInvalidRange     = &Error{Kind: KindInvalidRange}
	ErrPasswordMismatch = &Error{Kind: KindPasswordMismatch}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrStorageFailure   = &Error{Kind: KindStorageFailure}
)

type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target with a
// field set only matches errors on that field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

func DuplicateKey(field, message string) *Error {
	return &Error{Kind: KindDuplicateKey, Field: field, Message: message}
}

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: "field is required"}
}

func InvalidRange(field, message string) *Error {
	return &Error{Kind: KindInvalidRange, Field: field, Message: message}
}

func PasswordMismatch() *Error {
	return &Error{Kind: KindPasswordMismatch, Field: "confirmPassword", Message: "passwords do not match"}
}

func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

// Storage wraps a driver error. Errors that already carry a kind pass through.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Kind: KindStorageFailure, Message: "storage failure", Err: err}
}

// KindOf returns the kind carried by err, or an empty kind.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
