package mocks

import (
	"context"
	"sort"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. Records are copied on
// the way in and out so callers cannot mutate stored state.
type MockTaskStore struct {
	CreateFn      func(ctx context.Context, task *domain.Task) error
	GetByIDFn     func(ctx context.Context, id string) (*domain.Task, error)
	ListByUserFn  func(ctx context.Context, userID string) ([]*domain.Task, error)
	UpdateFieldFn func(ctx context.Context, id string, field domain.TaskField, value string) error
	DeleteFn      func(ctx context.Context, id string) error

	Tasks map[string]*domain.Task

	// Calls counts invocations per method name.
	Calls map[string]int
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[string]*domain.Task),
		Calls: make(map[string]int),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.Calls["Create"]++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if _, exists := m.Tasks[task.ID]; exists {
		return store.ErrDuplicate
	}
	stored := *task
	m.Tasks[task.ID] = &stored
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	m.Calls["GetByID"]++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	found := *task
	return &found, nil
}

// ListByUser implements the TaskStore interface. Results are ordered by ID.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	m.Calls["ListByUser"]++
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	tasks := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID == userID {
			found := *task
			tasks = append(tasks, &found)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// UpdateField implements the TaskStore interface
func (m *MockTaskStore) UpdateField(ctx context.Context, id string, field domain.TaskField, value string) error {
	m.Calls["UpdateField"]++
	if m.UpdateFieldFn != nil {
		return m.UpdateFieldFn(ctx, id, field, value)
	}
	task, exists := m.Tasks[id]
	if !exists {
		return store.ErrTaskNotFound
	}
	switch field {
	case domain.TaskFieldStatus:
		task.Status = domain.TaskStatus(value)
	case domain.TaskFieldDescription:
		task.Description = value
	default:
		return store.ErrInvalidEntity
	}
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	m.Calls["Delete"]++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}
