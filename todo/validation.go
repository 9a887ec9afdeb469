package todo

import (
	"errors"
	"strings"

	"github.com/daydid/daydid/internal/validation"
)

var (
	// ErrEmptyTask is returned when a task is empty after trimming.
	ErrEmptyTask = errors.New("task cannot be empty")

	// ErrInvalidPriority is returned when a priority is outside the valid set.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrNotFound is returned when no todo matches the given ID.
	ErrNotFound = errors.New("todo not found")

	// ErrCorruptDocument is returned when the document's todos field is
	// missing or not a sequence.
	ErrCorruptDocument = errors.New("todo document is corrupt")

	// ErrPersist is returned when the document cannot be written.
	ErrPersist = errors.New("cannot persist todo document")

	// ErrMissingCreatedAt is returned when a todo has no creation timestamp.
	ErrMissingCreatedAt = errors.New("todo has no creation timestamp")

	// ErrMissingTags is returned when a todo's tags field is not a sequence.
	ErrMissingTags = errors.New("todo tags must be a sequence")
)

// ValidateTask checks that the task text is non-empty after trimming.
func ValidateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	return nil
}

// ValidatePriority checks that the priority is a known value.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, priority, ValidPriorities())
	}
	return nil
}

// ValidateTodo checks whether a todo satisfies the document invariant:
// non-empty task, valid priority, a creation timestamp, and a tags
// sequence. Records failing it are dropped on both load and save.
// Completion consistency is not checked: a completed todo without a
// completion timestamp stays in the document and never appears in the
// did feed.
func ValidateTodo(t *Todo) error {
	if err := ValidateTask(t.Task); err != nil {
		return err
	}

	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}

	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}

	if t.Tags == nil {
		return ErrMissingTags
	}

	return nil
}
