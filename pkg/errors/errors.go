package errors

import "net/http"

// Error codes used across the service
const (
	CodeValidation = "ValidationError"
	CodeConflict   = "ConflictError"
	CodeNotFound   = "NotFoundError"
	CodeInternal   = "InternalError"
)

// APIError represents a standardized error response. The message is
// serialized under the "error" key; validation failures on multi-field
// payloads additionally carry the payload's required field names.
type APIError struct {
	Code     string   `json:"-"`
	Message  string   `json:"error"`
	Required []string `json:"required,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a 400 error for a missing or malformed field
func NewValidationError(message string) *APIError {
	return &APIError{Code: CodeValidation, Message: message}
}

// NewMissingFieldsError creates a 400 error listing the payload's required fields
func NewMissingFieldsError(required []string) *APIError {
	return &APIError{
		Code:     CodeValidation,
		Message:  "Missing required fields",
		Required: required,
	}
}

// NewConflictError creates a 409 error for a duplicate resource key
func NewConflictError(message string) *APIError {
	return &APIError{Code: CodeConflict, Message: message}
}

// NewNotFoundError creates a 404 error for an unknown resource key
func NewNotFoundError(message string) *APIError {
	return &APIError{Code: CodeNotFound, Message: message}
}

// NewInternalError creates a 500 error for an unexpected fault
func NewInternalError() *APIError {
	return &APIError{Code: CodeInternal, Message: "Internal server error"}
}
