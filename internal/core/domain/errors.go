// Package domain defines the core domain models for AuthMe.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "AM-AUTH-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// ============================================================================
// Authentication Errors (AUTH)
// ============================================================================

var (
	// ErrAuthNotFound indicates no authenticated session exists for the key.
	ErrAuthNotFound = NewDomainError("AM-AUTH-4040", "auth record not found")

	// ErrAuthConflict indicates an authenticated session already exists.
	ErrAuthConflict = NewDomainError("AM-AUTH-4090", "auth record already exists")

	// ErrAuthValidation indicates auth record validation failed.
	ErrAuthValidation = NewDomainError("AM-AUTH-4001", "auth record validation failed")

	// ErrNameInvalid indicates the player name violates format rules.
	ErrNameInvalid = NewDomainError("AM-AUTH-4002", "invalid player name")

	// ErrLoginThrottled indicates too many login attempts for the key.
	ErrLoginThrottled = NewDomainError("AM-AUTH-4290", "too many login attempts")
)

// ============================================================================
// Limbo Errors (LIMBO)
// ============================================================================

var (
	// ErrLimboNotFound indicates no limbo record exists for the key.
	ErrLimboNotFound = NewDomainError("AM-LIMBO-4040", "limbo record not found")

	// ErrLimboConflict indicates a limbo record already exists for the key.
	ErrLimboConflict = NewDomainError("AM-LIMBO-4090", "limbo record already exists")
)

// ============================================================================
// Host Errors (HOST)
// ============================================================================

var (
	// ErrHostCapability indicates the host accessor shape could not be
	// determined; the host service degrades to the legacy path.
	ErrHostCapability = NewDomainError("AM-HOST-5001", "host capability detection failed")

	// ErrHostListShape indicates the host returned an unrecognized
	// online-player list shape; the caller receives an empty list.
	ErrHostListShape = NewDomainError("AM-HOST-5002", "unknown online player list shape")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an internal extension error.
	ErrInternal = NewDomainError("AM-SYS-5000", "internal error")

	// ErrStorage indicates a datasource error.
	ErrStorage = NewDomainError("AM-SYS-5001", "storage error")
)
