package errors

import (
	"github.com/pkg/errors"
)

// AppError defines the interface for map-engine errors
type AppError interface {
	error
	ErrorCode() string // Stable error code
	Message() string   // Human-readable error message
	Details() string   // Detailed error information (optional)
}

// MapError is a basic error structure that implements the AppError interface
type MapError struct {
	errorCode string
	message   string
	details   string
}

// NewMapError creates a new map error
func NewMapError(errorCode, message, details string) *MapError {
	return &MapError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *MapError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches errors by code so that errors carrying details still match their sentinel
func (e *MapError) Is(target error) bool {
	t, ok := target.(*MapError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *MapError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the error code
func (e *MapError) ErrorCode() string {
	return e.errorCode
}

// Message returns the error message
func (e *MapError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *MapError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *MapError) WithDetails(details string) *MapError {
	return &MapError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Projection errors
	ErrInvalidViewport = NewMapError(
		"INVALID_VIEWPORT",
		"viewport must have a positive size and a non-degenerate bounding box",
		"",
	)

	ErrInvalidProjection = NewMapError(
		"INVALID_PROJECTION",
		"standard parallels do not define a conic projection",
		"",
	)

	// Marker errors
	ErrInvalidCoordinates = NewMapError(
		"INVALID_COORDINATES",
		"invalid coordinates provided",
		"",
	)

	ErrMarkerImport = NewMapError(
		"MARKER_IMPORT_FAILED",
		"marker import failed",
		"",
	)

	// Circle errors
	ErrUnknownCircle = NewMapError(
		"UNKNOWN_CIRCLE",
		"circle role must be A or B",
		"",
	)

	ErrInvalidRadius = NewMapError(
		"INVALID_RADIUS",
		"circle radius must be positive",
		"",
	)

	// Control surface errors
	ErrUnknownCheckbox = NewMapError(
		"UNKNOWN_CHECKBOX",
		"no checkbox with this name",
		"",
	)

	ErrUnknownEvent = NewMapError(
		"UNKNOWN_EVENT",
		"unsupported event type",
		"",
	)
)
