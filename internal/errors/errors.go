package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound   = new(ErrCodeNotFound, "resource not found")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrSystem     = new(ErrCodeSystemError, "system error")

	// Input failures of the proration engine. None of them is retryable.
	ErrInvalidDate   = new(ErrCodeInvalidDate, "invalid activation date")
	ErrInvalidAnchor = new(ErrCodeInvalidAnchor, "invalid anchor day")
	ErrInvalidAmount = new(ErrCodeInvalidAmount, "invalid amount")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:      http.StatusNotFound,
		ErrValidation:    http.StatusBadRequest,
		ErrInvalidDate:   http.StatusBadRequest,
		ErrInvalidAnchor: http.StatusBadRequest,
		ErrInvalidAmount: http.StatusBadRequest,
		ErrSystem:        http.StatusInternalServerError,
	}
)

const (
	ErrCodeSystemError   = "system_error"
	ErrCodeNotFound      = "not_found"
	ErrCodeValidation    = "validation_error"
	ErrCodeInvalidDate   = "invalid_date"
	ErrCodeInvalidAnchor = "invalid_anchor"
	ErrCodeInvalidAmount = "invalid_amount"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports any caller input error, including the engine's
// date, anchor and amount failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		IsInvalidDate(err) ||
		IsInvalidAnchor(err) ||
		IsInvalidAmount(err)
}

// IsSystem checks if an error is an internal failure
func IsSystem(err error) bool {
	return errors.Is(err, ErrSystem)
}

func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

func IsInvalidAnchor(err error) bool {
	return errors.Is(err, ErrInvalidAnchor)
}

func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// Code returns the machine-readable code of the first sentinel err is marked with.
func Code(err error) string {
	for _, sentinel := range []*InternalError{
		ErrInvalidDate, ErrInvalidAnchor, ErrInvalidAmount, ErrValidation, ErrNotFound, ErrSystem,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Code
		}
	}
	return ErrCodeSystemError
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
