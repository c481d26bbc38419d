// Package errors provides centralized error definitions and error handling
// utilities for the jalon codebase. It defines domain-specific errors for
// scheduling, notification delivery, and project-file loading, along with
// constructors that wrap context and classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - CycleError: a dependency cycle in the task graph
//   - DependencyError: a task references an unknown dependency
//   - DeliveryError: a notification could not be delivered to a recipient
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewCycleError([]string{"a", "b", "a"})
//	err := errors.NewDependencyError("build", "design")
//	err := errors.NewDeliveryError("Maya", "email", baseErr)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrCyclicDependency) { ... }
//
//	var depErr *errors.DependencyError
//	if errors.As(err, &depErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
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

// Scheduling sentinel errors
var (
	// ErrCyclicDependency indicates a dependency cycle in the task graph.
	ErrCyclicDependency = New("dependency cycle detected")
	// ErrUnknownDependency indicates a task references a dependency that is
	// not registered with the project.
	ErrUnknownDependency = New("unknown dependency")
	// ErrTaskNotFound indicates that a task could not be found.
	ErrTaskNotFound = New("task not found")
	// ErrTaskExists indicates that a task with the same name is already registered.
	ErrTaskExists = New("task already exists")
)

// Notification sentinel errors
var (
	// ErrDeliveryFailed indicates a notification delivery failure.
	ErrDeliveryFailed = New("delivery failed")
	// ErrNoChannel indicates that no delivery channel is configured.
	ErrNoChannel = New("no channel configured")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrMemberNotFound indicates that a team member could not be found.
	ErrMemberNotFound = New("member not found")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message string
	cause   error
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

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CycleError reports a dependency cycle discovered while traversing the task
// graph. Cycle holds the task names forming the cycle, with the entry task
// repeated at the end.
//
// Example:
//
//	err := errors.NewCycleError([]string{"a", "b", "a"})
//	fmt.Println(err) // "cycle [a -> b -> a]: dependency cycle detected"
type CycleError struct {
	baseError
	Cycle []string
}

// NewCycleError creates a new CycleError for the given cycle chain.
func NewCycleError(cycle []string) *CycleError {
	return &CycleError{
		baseError: baseError{
			message: "dependency cycle",
			cause:   ErrCyclicDependency,
		},
		Cycle: cycle,
	}
}

// Error returns the formatted error message.
func (e *CycleError) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("cycle: %v", e.cause)
	}
	return fmt.Sprintf("cycle [%s]: %v", strings.Join(e.Cycle, " -> "), e.cause)
}

// Is checks if this error matches the target.
func (e *CycleError) Is(target error) bool {
	if _, ok := target.(*CycleError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// DependencyError reports that a task references a dependency that is not
// registered with the project. Dependency validation is deliberately lazy:
// an invalid reference is only surfaced when the graph is traversed.
type DependencyError struct {
	baseError
	Task       string
	Dependency string
}

// NewDependencyError creates a new DependencyError.
func NewDependencyError(task, dependency string) *DependencyError {
	return &DependencyError{
		baseError: baseError{
			message: "unresolved dependency",
			cause:   ErrUnknownDependency,
		},
		Task:       task,
		Dependency: dependency,
	}
}

// Error returns the formatted error message.
func (e *DependencyError) Error() string {
	var parts []string
	if e.Task != "" {
		parts = append(parts, fmt.Sprintf("task=%s", e.Task))
	}
	if e.Dependency != "" {
		parts = append(parts, fmt.Sprintf("dep=%s", e.Dependency))
	}

	prefix := "dependency error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("dependency error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %v", prefix, e.cause)
}

// Is checks if this error matches the target.
func (e *DependencyError) Is(target error) bool {
	if _, ok := target.(*DependencyError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// DeliveryError reports a failed notification delivery to a single recipient.
// Broadcasts are best-effort: delivery errors are collected per recipient
// rather than aborting the fan-out.
type DeliveryError struct {
	baseError
	Recipient string
	Method    string
}

// NewDeliveryError creates a new DeliveryError.
func NewDeliveryError(recipient, method string, cause error) *DeliveryError {
	if cause == nil {
		cause = ErrDeliveryFailed
	}
	return &DeliveryError{
		baseError: baseError{
			message: "notification delivery",
			cause:   cause,
		},
		Recipient: recipient,
		Method:    method,
	}
}

// Error returns the formatted error message.
func (e *DeliveryError) Error() string {
	var parts []string
	if e.Recipient != "" {
		parts = append(parts, fmt.Sprintf("recipient=%s", e.Recipient))
	}
	if e.Method != "" {
		parts = append(parts, fmt.Sprintf("method=%s", e.Method))
	}

	prefix := "delivery error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("delivery error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %v", prefix, e.cause)
}

// Is checks if this error matches the target.
func (e *DeliveryError) Is(target error) bool {
	if _, ok := target.(*DeliveryError); ok {
		return true
	}
	if errors.Is(ErrDeliveryFailed, target) {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message: message,
			cause:   ErrInvalidInput,
		},
		Field: field,
	}
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error [field=%s]: %s", e.Field, e.message)
	}
	return fmt.Sprintf("validation error: %s", e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsGraphError returns true if the error stems from an invalid task graph
// (cycle or unresolved dependency).
func IsGraphError(err error) bool {
	return errors.Is(err, ErrCyclicDependency) || errors.Is(err, ErrUnknownDependency)
}

// IsDeliveryError returns true if the error is a notification delivery failure.
func IsDeliveryError(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}

// IsValidation returns true if the error represents failed input validation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
