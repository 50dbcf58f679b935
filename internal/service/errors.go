// Package service provides the application-level task service.
package service

import "fmt"

// Error handling principles, shared with the API layer:
// 1. Service methods return sentinel errors for expected error conditions
//    (domain.ErrEmptyTitle, store.ErrTaskNotFound), wrapped for context.
// 2. Unexpected errors are wrapped in TaskServiceError.
// 3. Callers use errors.Is/errors.As to check for specific conditions.
// 4. The API layer maps service errors to appropriate HTTP status codes.

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
