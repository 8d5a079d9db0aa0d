package errors

import (
	"github.com/pkg/errors"
)

const codeInternal = "INTERNAL"

// ErrorInfo is the serializable form of an error carried by a frame
type ErrorInfo struct {
	Code    string `json:"code"`              // Stable error code, e.g. "MARKER_IMPORT_FAILED"
	Message string `json:"message"`           // Human-readable error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// NewErrorInfo describes err, preferring the first AppError in its chain
func NewErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}
	}

	return &ErrorInfo{Code: codeInternal, Message: err.Error()}
}
