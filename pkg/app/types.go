package app

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeImageAccess  = "IMAGE_ACCESS"
	ErrCodeBadHeader    = "BAD_HEADER"
	ErrCodeLayout       = "LAYOUT"
	ErrCodeExtraction   = "EXTRACTION"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCode returns the code of the first CommonError in err's chain, or an
// empty string.
func ErrorCode(err error) string {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// OpenErrorCode classifies a failure to open a boot image
func OpenErrorCode(err error) string {
	switch {
	case errors.Is(err, types.ErrMagicMismatch), errors.Is(err, types.ErrTruncated):
		return ErrCodeBadHeader
	case errors.Is(err, types.ErrUnknownPageSize), errors.Is(err, types.ErrInvalidPageSize):
		return ErrCodeLayout
	default:
		return ErrCodeImageAccess
	}
}
