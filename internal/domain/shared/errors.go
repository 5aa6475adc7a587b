package shared

import "fmt"

// DomainError represents a business-level failure
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the repositories
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeConflict    = "CONFLICT"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE_FAILED"
)

// Common domain errors
var (
	ErrNotFound    = NewDomainError(CodeNotFound, "Resource not found")
	ErrConflict    = NewDomainError(CodeConflict, "Resource already exists")
	ErrPersistence = NewDomainError(CodePersistence, "Failed to persist document")
)

// NewValidationError reports missing or invalid required fields
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewMissingFieldsError reports the required fields that were not provided,
// phrased the way the storefront API has always phrased it
func NewMissingFieldsError(fields ...string) *DomainError {
	msg := "Missing required fields:"
	for i, f := range fields {
		if i > 0 {
			msg += ","
		}
		msg = fmt.Sprintf("%s %s", msg, f)
	}
	return NewValidationError(msg)
}

// NewNotFoundError reports an unknown id for the named entity
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(CodeNotFound, entity+" not found")
}
