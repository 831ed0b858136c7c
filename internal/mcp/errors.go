package mcp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrConfirmationRequired is returned by reset_checklist without confirm=true.
var ErrConfirmationRequired = errors.New("confirmation required")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps handler errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &APIError{Code: "INVALID_ARGUMENT", Message: err.Error(), Details: fields, RecoveryHint: "Check ids with get_checklist and use the documented enum values"}
	case errors.Is(err, ErrConfirmationRequired):
		return &APIError{Code: "CONFIRMATION_REQUIRED", Message: "reset discards all edits", RecoveryHint: "Ask the user, then retry with confirm=true"}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
}
