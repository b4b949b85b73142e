// Package errors provides centralized error definitions and error handling
// utilities for the stepmate codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - TransportError: the decomposition endpoint could not be reached at all
//   - APIError: the decomposition endpoint answered with a non-2xx status
//   - ParseError: the model response did not match any accepted shape
//   - StorageError: the persistence medium rejected a read or write
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//   - ConflictError: a stale write was rejected
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewStorageError("save tasks", baseErr)
//	err := errors.NewNotFoundError("task", "a1b2c3d4")
//	err := errors.NewAPIError(401, "invalid api key")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTaskNotFound) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors shared across subsystems.
var (
	// ErrEmptyGoal indicates that a decomposition goal was blank after trimming.
	ErrEmptyGoal = New("goal is empty")
	// ErrMissingAPIKey indicates that no API key is configured.
	ErrMissingAPIKey = New("api key not configured")
	// ErrTaskNotFound indicates that a task could not be found.
	ErrTaskNotFound = New("task not found")
	// ErrStepNotFound indicates that a step could not be found within a task.
	ErrStepNotFound = New("step not found")
	// ErrNoSteps indicates that a response yielded no usable steps.
	ErrNoSteps = New("no steps in response")
	// ErrQuotaExceeded indicates the persistence medium has no room left.
	ErrQuotaExceeded = New("storage quota exceeded")
	// ErrCanceled indicates the user aborted an interactive operation.
	ErrCanceled = New("operation canceled")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// TransportError represents a failure to reach the decomposition endpoint:
// DNS failure, refused connection, timeout. No HTTP response was received.
type TransportError struct {
	baseError
}

// NewTransportError creates a new TransportError.
func NewTransportError(message string, cause error) *TransportError {
	return &TransportError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: false,
		},
	}
}

// Error returns the formatted error message.
func (e *TransportError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.message, e.cause)
	}
	return fmt.Sprintf("transport error: %s", e.message)
}

// Is checks if this error matches the target.
func (e *TransportError) Is(target error) bool {
	if _, ok := target.(*TransportError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// APIError represents a non-2xx answer from the decomposition endpoint.
// It carries the HTTP status code and the response body (or a message
// extracted from it) for status-specific user messaging.
type APIError struct {
	baseError
	Status int
}

// NewAPIError creates a new APIError for the given status and message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{
		baseError: baseError{
			message:    message,
			userFacing: true,
		},
		Status: status,
	}
}

// Message returns the raw message without status decoration.
func (e *APIError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error [status=%d]: %s", e.Status, e.message)
}

// Is checks if this error matches the target. A target APIError with a zero
// status matches any status.
func (e *APIError) Is(target error) bool {
	if other, ok := target.(*APIError); ok {
		return other.Status == 0 || other.Status == e.Status
	}
	return e.baseError.Is(target)
}

// ParseError represents a model response that survived transport but did not
// match any accepted shape under the three-tier parsing policy.
type ParseError struct {
	baseError
	Tier int // parsing tier that gave up (1=json, 2=extracted json, 3=text)
}

// NewParseError creates a new ParseError.
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: false,
		},
	}
}

// WithTier records the parsing tier that failed.
func (e *ParseError) WithTier(tier int) *ParseError {
	e.Tier = tier
	return e
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	prefix := "parse error"
	if e.Tier > 0 {
		prefix = fmt.Sprintf("parse error [tier=%d]", e.Tier)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ParseError) Is(target error) bool {
	if _, ok := target.(*ParseError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// StorageError represents a rejected operation on the persistence medium,
// typically a failed write. Read-path deserialization failures are absorbed
// by the store and never surface as StorageError.
type StorageError struct {
	baseError
	Key string
}

// NewStorageError creates a new StorageError.
func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithKey adds the storage key to the error context.
func (e *StorageError) WithKey(key string) *StorageError {
	e.Key = key
	return e
}

// Error returns the formatted error message.
func (e *StorageError) Error() string {
	prefix := "storage error"
	if e.Key != "" {
		prefix = fmt.Sprintf("storage error [key=%s]", e.Key)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StorageError) Is(target error) bool {
	if _, ok := target.(*StorageError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError indicates that a resource could not be found.
type NotFoundError struct {
	baseError
	Resource string
	ID       string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s %q not found", resource, id),
			userFacing: true,
		},
		Resource: resource,
		ID:       id,
	}
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if e.Resource == "task" && target == ErrTaskNotFound {
		return true
	}
	if e.Resource == "step" && target == ErrStepNotFound {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithField adds the offending field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	prefix := "validation error"
	if e.Field != "" {
		prefix = fmt.Sprintf("validation error [field=%s]", e.Field)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ConflictError indicates that a write was rejected because the underlying
// collection changed since it was read. The current storage layer never
// produces it (last writer wins); the type exists for callers that layer
// optimistic versioning on top.
type ConflictError struct {
	baseError
	Key string
}

// NewConflictError creates a new ConflictError for the given storage key.
func NewConflictError(key string) *ConflictError {
	return &ConflictError{
		baseError: baseError{
			message:    fmt.Sprintf("stale write to %q rejected", key),
			userFacing: true,
		},
		Key: key,
	}
}

// Is checks if this error matches the target.
func (e *ConflictError) Is(target error) bool {
	if _, ok := target.(*ConflictError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// classifier is implemented by errors that know whether they are safe to
// show to end users.
type classifier interface {
	IsUserFacing() bool
}

// IsUserFacing returns true if err (or any error in its chain) declares
// itself safe to display to end users.
func IsUserFacing(err error) bool {
	for err != nil {
		if c, ok := err.(classifier); ok {
			return c.IsUserFacing()
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound returns true if err is any flavor of not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return As(err, &nf) || Is(err, ErrTaskNotFound) || Is(err, ErrStepNotFound)
}

// IsAbsorbable returns true for errors that Decompose masks with fallback
// content: transport failures, API failures, and parse failures.
func IsAbsorbable(err error) bool {
	var (
		te *TransportError
		ae *APIError
		pe *ParseError
	)
	return As(err, &te) || As(err, &ae) || As(err, &pe)
}
