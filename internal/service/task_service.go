package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/store"
)

// TaskService manages the tasks of a signed-in user. Every operation is
// scoped by the caller's user ID.
type TaskService interface {
	// Add creates a Pending task and returns its ID.
	Add(ctx context.Context, userID, name, description string) (string, error)

	// List returns all tasks owned by userID, possibly none.
	List(ctx context.Context, userID string) ([]*domain.Task, error)

	// Get returns a task if userID owns it.
	Get(ctx context.Context, userID, taskID string) (*domain.Task, error)

	// Modify changes the status or description of an owned task.
	Modify(ctx context.Context, userID, taskID string, field domain.TaskField, value string) error

	// Delete removes an owned task permanently.
	Delete(ctx context.Context, userID, taskID string) error
}

// TaskServiceImpl implements the TaskService interface
type TaskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskServiceImpl{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}
}

// Add validates the fields, then persists a new task.
func (s *TaskServiceImpl) Add(ctx context.Context, userID, name, description string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(userID, name, description)
	if err != nil {
		log.Debug("rejected task input", "user_id", userID, "error", err)
		return "", err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			"task_id", task.ID,
			"user_id", userID,
			"error", err)
		return "", fmt.Errorf("%w: failed to add task: %w", ErrBackend, err)
	}

	log.Info("task created", "task_id", task.ID, "user_id", userID)
	return task.ID, nil
}

// List returns the user's tasks in backend order.
func (s *TaskServiceImpl) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return nil, domain.NewValidationError("user_id", "cannot be empty", domain.ErrEmptyUserID)
	}

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: failed to retrieve tasks: %w", ErrBackend, err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks", "user_id", userID, "count", len(tasks))
	return tasks, nil
}

// Get returns the task when the user owns it.
func (s *TaskServiceImpl) Get(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	return s.loadOwned(ctx, userID, taskID)
}

// Modify applies a partial update to one field. The description may be set
// to any string, including an empty one; only creation requires content.
func (s *TaskServiceImpl) Modify(
	ctx context.Context,
	userID, taskID string,
	field domain.TaskField,
	value string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.loadOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}

	switch field {
	case domain.TaskFieldStatus:
		status, err := domain.ParseTaskStatus(value)
		if err != nil {
			return err
		}
		value = string(status)
	case domain.TaskFieldDescription:
	default:
		return domain.NewValidationError("field", "must be status or description", domain.ErrInvalidTaskField)
	}

	if err := s.tasks.UpdateField(ctx, task.ID, field, value); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrNotFoundOrForbidden
		}
		log.Error("failed to update task",
			"task_id", task.ID,
			"field", field,
			"error", err)
		return fmt.Errorf("%w: failed to modify task: %w", ErrBackend, err)
	}

	log.Info("task updated", "task_id", task.ID, "user_id", userID, "field", field)
	return nil
}

// Delete removes the task after the ownership check.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.loadOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrNotFoundOrForbidden
		}
		log.Error("failed to delete task", "task_id", task.ID, "error", err)
		return fmt.Errorf("%w: failed to delete task: %w", ErrBackend, err)
	}

	log.Info("task deleted", "task_id", task.ID, "user_id", userID)
	return nil
}

// loadOwned fetches a task and checks that userID owns it. A missing task and
// a task owned by someone else both yield ErrNotFoundOrForbidden.
func (s *TaskServiceImpl) loadOwned(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if taskID == "" {
		return nil, ErrNotFoundOrForbidden
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", "task_id", taskID, "user_id", userID)
			return nil, ErrNotFoundOrForbidden
		}
		log.Error("failed to load task", "task_id", taskID, "error", err)
		return nil, fmt.Errorf("%w: failed to load task: %w", ErrBackend, err)
	}

	if !task.OwnedBy(userID) {
		log.Warn("task access denied", "task_id", taskID, "user_id", userID)
		return nil, ErrNotFoundOrForbidden
	}

	return task, nil
}
