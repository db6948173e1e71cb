package verigen

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the class of a fatal pipeline error. Every code is
// terminal: the run aborts without writing partial output.
type ErrorCode string

const (
	// CodeMalformedSpecification means the master specification document
	// failed to parse, contained unknown fields, or carried an
	// unparseable type signature.
	CodeMalformedSpecification ErrorCode = "malformed_specification"

	// CodeUnsupportedTypeShape means a foreign-reference type reached the
	// endpoint naming function, which has no cross-namespace strategy.
	CodeUnsupportedTypeShape ErrorCode = "unsupported_type_shape"

	// CodeDuplicateEndpointKey means two specification entries in one
	// category collide under the naming function and must be merged.
	CodeDuplicateEndpointKey ErrorCode = "duplicate_endpoint_key"

	// CodeInconsistentArtifacts means the compiled test cases and the
	// generated API surface disagree, or an endpoint path does not embed
	// its own name.
	CodeInconsistentArtifacts ErrorCode = "inconsistent_artifacts"
)

// Error is the standard error envelope for pipeline failures.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new pipeline error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new pipeline error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail attaches a structured detail to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the ErrorCode carried by err, unwrapping as needed.
// Returns "" for errors that are not pipeline errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
