// Package apperrors defines the failure taxonomy shared by the stores,
// services, and HTTP features.
//
// Every taxonomy error carries a caller-safe message and the HTTP status
// code it maps to. Stores and services return these values directly;
// Write (httpwrite.go) is the single place they become HTTP responses.
// Anything that is not a taxonomy error is treated as an unexpected
// internal failure and never leaks its details to clients.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind discriminates the taxonomy members.
type Kind int

const (
	// KindInternal is an unexpected server-side failure.
	KindInternal Kind = iota
	// KindNotFound means the requested entity does not exist or is
	// filtered out.
	KindNotFound
	// KindMissingRequirement means the caller omitted a required field.
	KindMissingRequirement
	// KindDuplicate means a uniqueness constraint was violated.
	KindDuplicate
)

// Error is a taxonomy failure value.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Error) Error() string { return e.Message }

// Internal wraps an unexpected failure in a generic 500-class error.
// The message must be safe to show to callers; persistence internals
// never go through here.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message, StatusCode: http.StatusInternalServerError}
}

// NotFound reports a missing or filtered-out entity (404).
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// MissingRequirement reports an absent required field (400).
func MissingRequirement(message string) *Error {
	return &Error{Kind: KindMissingRequirement, Message: message, StatusCode: http.StatusBadRequest}
}

// Duplicate reports a uniqueness violation (409).
func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message, StatusCode: http.StatusConflict}
}

// As extracts a taxonomy error from err, or nil if err is not one.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

func is(err error, k Kind) bool {
	ae := As(err)
	return ae != nil && ae.Kind == k
}

// IsNotFound reports whether err is a NotFound taxonomy error.
func IsNotFound(err error) bool { return is(err, KindNotFound) }

// IsMissingRequirement reports whether err is a MissingRequirement taxonomy error.
func IsMissingRequirement(err error) bool { return is(err, KindMissingRequirement) }

// IsDuplicate reports whether err is a Duplicate taxonomy error.
func IsDuplicate(err error) bool { return is(err, KindDuplicate) }

// IsInternal reports whether err is an Internal taxonomy error.
func IsInternal(err error) bool { return is(err, KindInternal) }
