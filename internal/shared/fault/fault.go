// Package fault carries the small error taxonomy shared by every handler and
// maps it onto HTTP status codes at the response boundary.
package fault

import (
	"errors"
	"net/http"
)

// Kind classifies an error by who caused it and how the caller should react.
type Kind uint8

const (
	Internal Kind = iota
	Invalid
	NotFound
	Unavailable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	case Unavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// InternalMessage is the only message surfaced for Internal faults.
const InternalMessage = "Internal server error"

// Error is a classified error with a caller-safe message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewInvalid returns a client error.
func NewInvalid(code, message string) *Error {
	return &Error{Kind: Invalid, Code: code, Message: message}
}

// NewNotFound returns a missing-resource error.
func NewNotFound(code, message string) *Error {
	return &Error{Kind: NotFound, Code: code, Message: message}
}

// NewUnavailable returns an error for a feature that is not configured.
func NewUnavailable(code, message string) *Error {
	return &Error{Kind: Unavailable, Code: code, Message: message}
}

// Wrap classifies err as an Internal fault.
func Wrap(code string, err error) *Error {
	return &Error{Kind: Internal, Code: code, Message: InternalMessage, Err: err}
}

// KindOf reports the Kind of err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// Status maps err to an HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code of err, or "internal_error".
func Code(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Code != "" {
		return fe.Code
	}
	return "internal_error"
}

// PublicMessage returns the message safe to show the caller.
func PublicMessage(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Kind != Internal && fe.Message != "" {
		return fe.Message
	}
	return InternalMessage
}
