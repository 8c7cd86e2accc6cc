package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// GeneratorNotFound indicates no generator is registered for the
	// requested framework.
	GeneratorNotFound AppErrorType = iota
	// ValidationFailed indicates the configuration failed generator
	// validation.
	ValidationFailed
	// TemplateNotFound indicates a template reference could not be
	// resolved, after fallback attempts.
	TemplateNotFound
	// WriteFailed indicates a filesystem failure during directory
	// creation or file write.
	WriteFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewGeneratorNotFoundError creates a generator resolution error.
func NewGeneratorNotFoundError(message string) *AppError {
	return NewAppError(GeneratorNotFound, message, nil)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewTemplateNotFoundError creates a template resolution error.
func NewTemplateNotFoundError(message string, cause error) *AppError {
	return NewAppError(TemplateNotFound, message, cause)
}

// NewWriteError creates a filesystem write error.
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(WriteFailed, message, cause)
}
