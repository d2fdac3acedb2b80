package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("valid task", func(t *testing.T) {
		task, err := NewTask("user-1", "Buy milk", "2%, 1 gal")
		require.NoError(t, err)

		_, parseErr := uuid.Parse(task.ID)
		assert.NoError(t, parseErr, "task ID should be a UUID")
		assert.Equal(t, "Buy milk", task.Name)
		assert.Equal(t, "2%, 1 gal", task.Description)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, "user-1", task.UserID)
		assert.NoError(t, task.Validate())
	})

	t.Run("fields are stored untrimmed", func(t *testing.T) {
		task, err := NewTask("user-1", "  padded ", " desc ")
		require.NoError(t, err)
		assert.Equal(t, "  padded ", task.Name)
		assert.Equal(t, " desc ", task.Description)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := NewTask("user-1", "a", "a")
		require.NoError(t, err)
		b, err := NewTask("user-1", "b", "b")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	tests := []struct {
		name        string
		userID      string
		taskName    string
		description string
		wantErr     error
	}{
		{"empty name", "user-1", "", "desc", ErrEmptyTaskName},
		{"whitespace name", "user-1", "  \t", "desc", ErrEmptyTaskName},
		{"empty description", "user-1", "name", "", ErrEmptyTaskDescription},
		{"whitespace description", "user-1", "name", "   ", ErrEmptyTaskDescription},
		{"missing owner", "", "name", "desc", ErrEmptyTaskUserID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task, err := NewTask(tc.userID, tc.taskName, tc.description)
			require.Error(t, err)
			assert.Nil(t, task)
			assert.True(t, errors.Is(err, ErrValidation), "should wrap ErrValidation")
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{
		ID:          uuid.NewString(),
		Name:        "name",
		Description: "desc",
		Status:      TaskStatusCompleted,
		UserID:      "user-1",
	}
	require.NoError(t, valid.Validate())

	t.Run("empty description is allowed after creation", func(t *testing.T) {
		task := valid
		task.Description = ""
		assert.NoError(t, task.Validate())
	})

	t.Run("invalid status", func(t *testing.T) {
		task := valid
		task.Status = "Done"
		err := task.Validate()
		assert.ErrorIs(t, err, ErrInvalidTaskStatus)
	})

	t.Run("missing id", func(t *testing.T) {
		task := valid
		task.ID = ""
		assert.ErrorIs(t, task.Validate(), ErrEmptyTaskID)
	})
}

func TestTaskOwnedBy(t *testing.T) {
	task := Task{UserID: "owner"}
	assert.True(t, task.OwnedBy("owner"))
	assert.False(t, task.OwnedBy("someone-else"))
	assert.False(t, task.OwnedBy(""))

	orphan := Task{}
	assert.False(t, orphan.OwnedBy(""), "an empty owner never matches")
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{"Pending", TaskStatusPending, false},
		{"Completed", TaskStatusCompleted, false},
		{" Completed\n", TaskStatusCompleted, false},
		{"completed", "", true},
		{"Done", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTaskStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaskStatus)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTaskField(t *testing.T) {
	f, err := ParseTaskField("Status")
	require.NoError(t, err)
	assert.Equal(t, TaskFieldStatus, f)

	f, err = ParseTaskField("description")
	require.NoError(t, err)
	assert.Equal(t, TaskFieldDescription, f)

	_, err = ParseTaskField("name")
	assert.ErrorIs(t, err, ErrInvalidTaskField)
}
