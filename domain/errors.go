package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeRateLimited  ErrorCode = "RATE_LIMITED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error. Details carries machine-readable
// context for the caller: validation rule lists, valid-value enumerations,
// or suggestions of known identities.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorWithDetails builds a domain error carrying caller-facing context.
func NewErrorWithDetails(code ErrorCode, message string, details map[string]interface{}) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WrapErrorWithDetails attaches caller-facing context to an existing error,
// typically a sentinel, so errors.Is against it keeps holding.
func WrapErrorWithDetails(code ErrorCode, err error, details map[string]interface{}) *Error {
	return &Error{
		Code:    code,
		Details: details,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrQuestNotFound    = NewError(ErrCodeNotFound, "quest not found")
	ErrPlayerNotFound   = NewError(ErrCodeNotFound, "player not found")
	ErrCategoryNotFound = NewError(ErrCodeNotFound, "category not found")
	ErrQuestCompleted   = NewError(ErrCodeConflict, "quest already completed")
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrInvalidPayload   = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// ErrorDetails extracts the details map from a domain error, if any.
func ErrorDetails(err error) map[string]interface{} {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Details
	}
	return nil
}
