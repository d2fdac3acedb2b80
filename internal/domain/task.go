package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskStatus is the completion state of a task.
type TaskStatus string

// Possible task status values. The spelling is what gets persisted and what
// the user types at the prompt.
const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// TaskField names a task attribute that can be changed after creation.
type TaskField string

// Mutable task fields.
const (
	TaskFieldStatus      TaskField = "status"
	TaskFieldDescription TaskField = "description"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskName        = errors.New("task name cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrEmptyTaskUserID      = errors.New("task user ID cannot be empty")
)

var validate = validator.New()

// newTaskInput carries the trimmed creation fields through the validator.
type newTaskInput struct {
	UserID      string `validate:"required"`
	Name        string `validate:"required"`
	Description string `validate:"required"`
}

// Task is a single to-do item owned by one user.
type Task struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Description string     `json:"description" firestore:"description"`
	Status      TaskStatus `json:"status" firestore:"status"`
	UserID      string     `json:"user_id" firestore:"user_id"`
}

// NewTask creates a Pending task with a fresh random ID.
// Name and description must be non-empty after trimming whitespace; they are
// stored as given.
func NewTask(userID, name, description string) (*Task, error) {
	in := newTaskInput{
		UserID:      strings.TrimSpace(userID),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := validate.Struct(in); err != nil {
		return nil, translateFieldErrors(err)
	}

	return &Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      TaskStatusPending,
		UserID:      userID,
	}, nil
}

// Validate checks a task loaded from or about to be written to a store.
func (t *Task) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "cannot be empty", ErrEmptyTaskID)
	}
	if t.UserID == "" {
		return NewValidationError("user_id", "cannot be empty", ErrEmptyTaskUserID)
	}
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyTaskName)
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "must be Pending or Completed", ErrInvalidTaskStatus)
	}
	return nil
}

// OwnedBy reports whether userID owns the task.
func (t *Task) OwnedBy(userID string) bool {
	return userID != "" && t.UserID == userID
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts user input to a TaskStatus. Matching is exact apart
// from surrounding whitespace.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.TrimSpace(s))
	if !status.Valid() {
		return "", NewValidationError("status", "must be Pending or Completed", ErrInvalidTaskStatus)
	}
	return status, nil
}

// ParseTaskField converts a field name to a TaskField.
func ParseTaskField(s string) (TaskField, error) {
	switch f := TaskField(strings.ToLower(strings.TrimSpace(s))); f {
	case TaskFieldStatus, TaskFieldDescription:
		return f, nil
	default:
		return "", NewValidationError("field", "must be status or description", ErrInvalidTaskField)
	}
}

// translateFieldErrors maps the first validator failure onto a domain error.
func translateFieldErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("", err.Error(), ErrValidation)
	}

	switch fieldErrs[0].Field() {
	case "Name":
		return NewValidationError("name", "cannot be empty", ErrEmptyTaskName)
	case "Description":
		return NewValidationError("description", "cannot be empty", ErrEmptyTaskDescription)
	case "UserID":
		return NewValidationError("user_id", "cannot be empty", ErrEmptyTaskUserID)
	default:
		return NewValidationError(strings.ToLower(fieldErrs[0].Field()), "is invalid", ErrValidation)
	}
}
