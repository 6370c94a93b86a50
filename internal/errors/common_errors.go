package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeDataUnavailable ErrorType = "DATA_UNAVAILABLE"
	ErrTypeProcessing      ErrorType = "PROCESSING"
	ErrTypeRender          ErrorType = "RENDER"
	ErrTypeStorage         ErrorType = "STORAGE"
	ErrTypeValidation      ErrorType = "VALIDATION"
	ErrTypeConfig          ErrorType = "CONFIG"
)

// Sentinels matched with errors.Is against any AppError of the same type.
var (
	ErrDataUnavailable = stderrors.New("data unavailable")
	ErrProcessing      = stderrors.New("processing failed")
	ErrRender          = stderrors.New("render failed")
	ErrStorage         = stderrors.New("storage failed")
	ErrValidation      = stderrors.New("validation failed")
	ErrConfig          = stderrors.New("invalid configuration")
)

var sentinels = map[ErrorType]error{
	ErrTypeDataUnavailable: ErrDataUnavailable,
	ErrTypeProcessing:      ErrProcessing,
	ErrTypeRender:          ErrRender,
	ErrTypeStorage:         ErrStorage,
	ErrTypeValidation:      ErrValidation,
	ErrTypeConfig:          ErrConfig,
}

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's type.
func (e *AppError) Is(target error) bool {
	sentinel, ok := sentinels[e.Type]
	return ok && target == sentinel
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewDataUnavailableError reports a source that is missing or cannot be parsed.
func NewDataUnavailableError(source string, cause error) *AppError {
	return NewAppError(ErrTypeDataUnavailable, fmt.Sprintf("%s cannot be loaded", source), cause).
		WithContext("source", source)
}

// NewProcessingError creates a table-transformation error
func NewProcessingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeProcessing, message, cause)
}

// NewRenderError creates a map rendering error
func NewRenderError(message string, cause error) *AppError {
	return NewAppError(ErrTypeRender, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or "".
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}
