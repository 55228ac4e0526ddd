package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors so the HTTP layer can map them
// to status codes without inspecting messages.
type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeStorage      ErrorCode = "STORAGE_ERROR"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
)

// AppError is the typed error used across services and repositories.
// Validation errors carry the offending field and the rule that failed;
// not-found and conflict errors carry the entity id.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Rule    string    `json:"rule,omitempty"`
	ID      int       `json:"id,omitempty"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is makes AppErrors comparable by code via errors.Is.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Validation reports a single failed rule on a single field. The message is
// surfaced verbatim to the caller.
func Validation(field, rule, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field, Rule: rule}
}

func NotFound(entity string, id int) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
		ID:      id,
	}
}

func Conflict(entity string, id int) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: fmt.Sprintf("%s with id %d already exists", entity, id),
		ID:      id,
	}
}

// Storage wraps an underlying store failure. The cause is kept for logs but
// never serialized.
func Storage(cause error) *AppError {
	return &AppError{Code: ErrCodeStorage, Message: "storage operation failed", Cause: cause}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeNotFound
}

func IsValidation(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeValidation
}

func IsConflict(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeConflict
}

func IsUnauthorized(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeUnauthorized
}

func IsStorage(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrCodeStorage
}
