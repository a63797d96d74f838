package apicalypse

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid caller input: blank or empty fields and
// lists, non-scalar array elements, empty array values, a non-positive
// limit, a negative offset, or a blank search term or condition.
//
// Validation failures are deterministic given the input and never
// transient.
type ValidationError struct {
	// Input names the offending input ("fields", "limit", "condition", ...).
	Input string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid %s: %s", e.Input, e.Message)
	}
	return e.Message
}

// IsValidationError returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(input, format string, args ...any) *ValidationError {
	return &ValidationError{Input: input, Message: fmt.Sprintf(format, args...)}
}

// StateErrorCode categorizes condition-chain state errors.
type StateErrorCode string

const (
	// ErrCodeInitialAlreadySet indicates Where was called after a condition exists.
	ErrCodeInitialAlreadySet StateErrorCode = "INITIAL_ALREADY_SET"

	// ErrCodeOrWithoutCondition indicates OrWhere was called on an empty chain.
	ErrCodeOrWithoutCondition StateErrorCode = "OR_WITHOUT_CONDITION"

	// ErrCodeCorruptOperator indicates an unknown logical-operator tag was
	// encountered while rendering the where clause. This guards against
	// state corruption, not normal use.
	ErrCodeCorruptOperator StateErrorCode = "CORRUPT_OPERATOR"
)

// StateError reports a misuse of the condition-chaining state machine or an
// internal-consistency fault detected during rendering.
type StateError struct {
	// Code identifies the error category.
	Code StateErrorCode

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsStateError returns true if the error is a StateError.
// Uses errors.As to handle wrapped errors.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

func newStateError(code StateErrorCode, format string, args ...any) *StateError {
	return &StateError{Code: code, Message: fmt.Sprintf(format, args...)}
}
