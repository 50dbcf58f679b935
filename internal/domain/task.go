package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Task represents a single tracked item. IDs are small positive integers
// assigned by the collection that owns the task; they are never reused,
// even after the task with the highest ID is deleted.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// NewTask creates a Task with the given ID and title. The title is trimmed
// before validation and storage. New tasks always start not done.
// Returns an error if validation fails.
func NewTask(id int, title string) (Task, error) {
	task := Task{
		ID:    id,
		Title: strings.TrimSpace(title),
		Done:  false,
	}

	if err := task.Validate(); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t Task) Validate() error {
	if t.ID < 1 {
		return ErrInvalidID
	}

	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTitle)
	}

	return nil
}

// IsValidationError reports whether err is any kind of validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidID)
}
