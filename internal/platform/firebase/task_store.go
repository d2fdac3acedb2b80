package firebase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/store"
	"google.golang.org/api/iterator"
)

// TasksCollection holds one document per task, keyed by task ID.
const TasksCollection = "tasks"

// TaskStore implements store.TaskStore on Firestore.
type TaskStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewTaskStore creates a Firestore-backed TaskStore.
func NewTaskStore(client *firestore.Client, logger *slog.Logger) *TaskStore {
	if client == nil {
		panic("firestore client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		client: client,
		logger: logger.With(slog.String("component", "firestore_task_store")),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// validTaskID reports whether id names a single document in the tasks
// collection. Firestore rejects anything else as an invalid path.
func validTaskID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.Contains(id, "/")
}

func (s *TaskStore) doc(id string) *firestore.DocumentRef {
	return s.client.Collection(TasksCollection).Doc(id)
}

// Create implements store.TaskStore.Create. The document ID equals task.ID.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	if _, err := s.doc(task.ID).Set(ctx, task); err != nil {
		log.Error("failed to write task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return mapFirestoreError("task", "create", err, nil)
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if !validTaskID(id) {
		return nil, store.ErrTaskNotFound
	}

	snap, err := s.doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError("task", "get", err, store.ErrTaskNotFound)
	}
	return decodeTask(snap)
}

// ListByUser implements store.TaskStore.ListByUser. Firestore returns
// equality-filtered results in document ID order.
func (s *TaskStore) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	iter := s.client.Collection(TasksCollection).Where("user_id", "==", userID).Documents(ctx)
	defer iter.Stop()

	tasks := []*domain.Task{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			log.Error("failed to list tasks",
				slog.String("error", err.Error()),
				slog.String("user_id", userID))
			return nil, mapFirestoreError("task", "list", err, nil)
		}
		task, err := decodeTask(snap)
		if err != nil {
			log.Warn("skipping malformed task document",
				slog.String("task_id", snap.Ref.ID),
				slog.String("error", err.Error()))
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateField implements store.TaskStore.UpdateField. Only the named field
// is written.
func (s *TaskStore) UpdateField(ctx context.Context, id string, field domain.TaskField, value string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch field {
	case domain.TaskFieldStatus:
		if !domain.TaskStatus(value).Valid() {
			return domain.NewValidationError("status", "must be Pending or Completed", domain.ErrInvalidTaskStatus)
		}
	case domain.TaskFieldDescription:
	default:
		return domain.NewValidationError("field", "must be status or description", domain.ErrInvalidTaskField)
	}

	if !validTaskID(id) {
		return store.ErrTaskNotFound
	}

	_, err := s.doc(id).Update(ctx, []firestore.Update{{Path: string(field), Value: value}})
	if err != nil {
		mapped := mapFirestoreError("task", "update", err, store.ErrTaskNotFound)
		if !errors.Is(mapped, store.ErrTaskNotFound) {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.String("task_id", id),
				slog.String("field", string(field)))
		}
		return mapped
	}
	return nil
}

// Delete implements store.TaskStore.Delete. A missing document yields
// store.ErrTaskNotFound.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !validTaskID(id) {
		return store.ErrTaskNotFound
	}

	if _, err := s.doc(id).Delete(ctx, firestore.Exists); err != nil {
		mapped := mapFirestoreError("task", "delete", err, store.ErrTaskNotFound)
		if !errors.Is(mapped, store.ErrTaskNotFound) {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.String("task_id", id))
		}
		return mapped
	}
	return nil
}

// decodeTask converts a snapshot into a Task. The document ID wins over a
// missing id field.
func decodeTask(snap *firestore.DocumentSnapshot) (*domain.Task, error) {
	var task domain.Task
	if err := snap.DataTo(&task); err != nil {
		return nil, store.NewStoreError("task", "decode", "malformed document", err)
	}
	if task.ID == "" {
		task.ID = snap.Ref.ID
	}
	return &task, nil
}
