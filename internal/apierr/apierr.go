// Package apierr defines the typed failure model for upstream API calls.
// Instead of an object with an optional "error" key, callers get a
// RequestError carrying a machine-readable kind, so they can branch without
// string inspection while the rendered messages stay stable.
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies an upstream request failure.
type Kind int

const (
	// KindTransport covers DNS, connection, and timeout failures.
	KindTransport Kind = iota
	// KindStatus is an HTTP error status from the upstream.
	KindStatus
	// KindDecode is a JSON decoding failure on the response body.
	KindDecode
	// KindUnexpected is any other failure inside a tool operation.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// RequestError is a failed upstream request.
type RequestError struct {
	Source string // "cbdb" or "tgaz"
	Kind   Kind
	Status int // HTTP status code, set for KindStatus
	Err    error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("API request failed: %v", e.Err)
	case KindStatus:
		return fmt.Sprintf("HTTP error status: %d", e.Status)
	case KindDecode:
		return fmt.Sprintf("Invalid response format: %v", e.Err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Transport wraps a network-level failure.
func Transport(source string, err error) *RequestError {
	return &RequestError{Source: source, Kind: KindTransport, Err: err}
}

// Status wraps an HTTP error status.
func Status(source string, code int) *RequestError {
	return &RequestError{Source: source, Kind: KindStatus, Status: code}
}

// Decode wraps a response parsing failure.
func Decode(source string, err error) *RequestError {
	return &RequestError{Source: source, Kind: KindDecode, Err: err}
}

// Unexpected wraps any other failure.
func Unexpected(source string, err error) *RequestError {
	return &RequestError{Source: source, Kind: KindUnexpected, Err: err}
}

// KindOf returns the kind of err if it is a RequestError.
func KindOf(err error) (Kind, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a RequestError of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// ValidationError indicates invalid tool arguments, rejected before any
// outbound request is made.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
