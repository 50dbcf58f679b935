package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tick/internal/domain"
	"github.com/phrazzld/tick/internal/store"
)

// newTestService builds a TaskService over a real file store in a temp dir
// and returns the service together with the backing file path.
func newTestService(t *testing.T) (TaskService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	fs, err := store.NewFileStore(path, nil)
	require.NoError(t, err)
	svc, err := NewTaskService(fs, nil)
	require.NoError(t, err)
	return svc, path
}

func TestNewTaskService(t *testing.T) {
	svc, err := NewTaskService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, svc)

	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "tasks.json"), nil)
	require.NoError(t, err)
	svc, err = NewTaskService(fs, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTaskService_CreateAssignsIncreasingIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		task, err := svc.Create(ctx, "task")
		require.NoError(t, err)
		assert.Equal(t, i, task.ID, "IDs must be strictly increasing from 1")
		assert.False(t, task.Done)
	}
}

func TestTaskService_NoIDReuseAfterDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, title)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, 2))

	task, err := svc.Create(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, 4, task.ID, "deleted IDs must not be reused")
}

func TestTaskService_CreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "seed")
	require.NoError(t, err)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, title)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle, "title %q must be rejected", title)

		tasks, listErr := svc.List(ctx)
		require.NoError(t, listErr)
		assert.Len(t, tasks, 1, "failed create must leave the collection unchanged")
	}
}

func TestTaskService_CreateTrimsTitle(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.Create(context.Background(), "  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
}

func TestTaskService_TogglePairRoundTrips(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	task, err := svc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, task.Done)

	task, err = svc.Toggle(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, task.Done, "toggling twice must restore the original state")
}

func TestTaskService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("on empty collection", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Contains(t, err.Error(), "999")

		_, err = svc.Toggle(ctx, 999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Contains(t, err.Error(), "999")

		err = svc.Delete(ctx, 999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Contains(t, err.Error(), "999")
	})

	t.Run("on non-matching collection", func(t *testing.T) {
		_, err := svc.Create(ctx, "Buy milk")
		require.NoError(t, err)

		_, err = svc.Get(ctx, 999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Contains(t, err.Error(), "999")
	})
}

func TestTaskService_Get(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	task, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, task)
}

func TestTaskService_EndToEndScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	milk, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, 1, milk.ID)
	assert.False(t, milk.Done)

	report, err := svc.Create(ctx, "Write report")
	require.NoError(t, err)
	assert.Equal(t, 2, report.ID)
	assert.False(t, report.Done)

	toggled, err := svc.Toggle(ctx, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	require.NoError(t, svc.Delete(ctx, 2))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.Task{ID: 1, Title: "Buy milk", Done: true}, tasks[0])
}

func TestTaskService_ReadYourWritesAcrossInstances(t *testing.T) {
	svc1, path := newTestService(t)
	ctx := context.Background()

	fs, err := store.NewFileStore(path, nil)
	require.NoError(t, err)
	svc2, err := NewTaskService(fs, nil)
	require.NoError(t, err)

	_, err = svc1.Create(ctx, "written by first instance")
	require.NoError(t, err)

	tasks, err := svc2.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1, "second instance must see the first instance's write")
	assert.Equal(t, "written by first instance", tasks[0].Title)

	// And the uniform reload policy applies to single-entity reads too.
	task, err := svc2.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "written by first instance", task.Title)
}

func TestTaskService_SurvivesRestart(t *testing.T) {
	svc1, path := newTestService(t)
	ctx := context.Background()

	_, err := svc1.Create(ctx, "Buy milk")
	require.NoError(t, err)
	_, err = svc1.Toggle(ctx, 1)
	require.NoError(t, err)

	// A fresh service over the same file stands in for a process restart.
	fs, err := store.NewFileStore(path, nil)
	require.NoError(t, err)
	svc2, err := NewTaskService(fs, nil)
	require.NoError(t, err)

	tasks, err := svc2.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.Task{ID: 1, Title: "Buy milk", Done: true}, tasks[0])
}

func TestTaskService_CorruptFileReadsAsEmpty(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(path, []byte("{ not valid json }"), 0o644))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The collection starts over: the next create gets ID 1.
	task, err := svc.Create(ctx, "fresh start")
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
}

func TestTaskService_MalformedRecordsAreSkipped(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	content := `[
  {"id": 1, "title": "kept", "done": false},
  {"title": "no id", "done": false},
  {"id": 3, "title": "   ", "done": true}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "kept", tasks[0].Title)
}

func TestTaskService_SaveFailurePropagates(t *testing.T) {
	saveErr := errors.New("disk full")

	records := new(MockRecordStore)
	records.On("Load", mock.Anything).Return([]store.TaskRecord{})
	records.On("Save", mock.Anything, mock.Anything).Return(saveErr)

	svc, err := NewTaskService(records, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Buy milk")
	assert.ErrorIs(t, err, saveErr)

	var svcErr *TaskServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_task", svcErr.Operation)

	records.AssertExpectations(t)
}
