package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
)

// Error là error duy nhất đi qua các layer: mang theo HTTP status để
// middleware dịch ra response mà không cần biết domain nào sinh ra nó.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match two *Error values by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// =====================================================
// DATA-LAYER TAXONOMY
// =====================================================

// InvalidArgument: malformed id, wrong type, failed schema check, bad enum value.
func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound: well-formed identifier with no matching record.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// =====================================================
// HTTP SURFACE
// =====================================================

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

func Internal(message string, err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

// =====================================================
// HELPERS
// =====================================================

// StatusOf returns the HTTP status carried by err, 500 for anything else.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

func IsInvalidArgument(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeInvalidArgument
}

func IsConflict(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == CodeConflict
}
