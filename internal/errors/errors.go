package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrHTTPClient       = new(ErrCodeHTTPClient, "http client error")
	ErrSystem           = new(ErrCodeSystemError, "system error")
	ErrInternal         = new(ErrCodeInternalError, "internal error")

	// Billing error kinds surfaced to request handlers
	ErrInvalidAmount             = new(ErrCodeInvalidAmount, "invalid amount")
	ErrUnsupportedPlan           = new(ErrCodeUnsupportedPlan, "unsupported plan")
	ErrMissingPriceConfiguration = new(ErrCodeMissingPriceConfiguration, "missing price configuration")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrHTTPClient:                http.StatusBadGateway,
		ErrNotFound:                  http.StatusNotFound,
		ErrValidation:                http.StatusBadRequest,
		ErrInvalidOperation:          http.StatusBadRequest,
		ErrSystem:                    http.StatusInternalServerError,
		ErrInternal:                  http.StatusInternalServerError,
		ErrInvalidAmount:             http.StatusBadRequest,
		ErrUnsupportedPlan:           http.StatusBadRequest,
		ErrMissingPriceConfiguration: http.StatusInternalServerError,
	}
)

const (
	ErrCodeHTTPClient                = "http_client_error"
	ErrCodeSystemError               = "system_error"
	ErrCodeInternalError             = "internal_error"
	ErrCodeNotFound                  = "not_found"
	ErrCodeValidation                = "validation_error"
	ErrCodeInvalidOperation          = "invalid_operation"
	ErrCodeInvalidAmount             = "invalid_amount"
	ErrCodeUnsupportedPlan           = "unsupported_plan"
	ErrCodeMissingPriceConfiguration = "missing_price_configuration"
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

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

// IsInvalidAmount reports whether a non-positive fee amount was requested
func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// IsUnsupportedPlan reports whether a plan duration/cadence has no configured price
func IsUnsupportedPlan(err error) bool {
	return errors.Is(err, ErrUnsupportedPlan)
}

// IsMissingPriceConfiguration reports whether a recognized plan has no catalog price id
func IsMissingPriceConfiguration(err error) bool {
	return errors.Is(err, ErrMissingPriceConfiguration)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// Is reports whether err is marked with (or wraps) target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
