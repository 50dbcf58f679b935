package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tick/internal/domain"
	"github.com/phrazzld/tick/internal/platform/logger"
	"github.com/phrazzld/tick/internal/store"
)

// RecordStore defines the persistence backend interface for the service layer.
type RecordStore interface {
	// Load reads the full record list from the backing file. Read failures
	// are non-fatal and yield an empty slice.
	Load(ctx context.Context) []store.TaskRecord

	// Save serializes the full record list and replaces the backing file.
	// Failures are propagated; they are the one fatal condition here.
	Save(ctx context.Context, records []store.TaskRecord) error
}

// TaskService provides task CRUD operations on top of a persistence backend.
//
// Every operation follows the same protocol: reload the in-memory collection
// from the backend, mutate or query it, and persist the full collection if
// anything changed. The reload gives read-your-writes behavior across
// independent service instances sharing one backing file. Concurrent writers
// are not arbitrated: two instances racing through reload-mutate-persist
// leave the last writer's file in place and drop the other's mutation.
type TaskService interface {
	// Create validates and stores a new task with the given title.
	Create(ctx context.Context, title string) (domain.Task, error)

	// List returns all tasks, freshly reloaded from the backend.
	List(ctx context.Context) ([]domain.Task, error)

	// Get returns the task with the given ID.
	Get(ctx context.Context, id int) (domain.Task, error)

	// Toggle flips the done flag of the task with the given ID.
	Toggle(ctx context.Context, id int) (domain.Task, error)

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id int) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	records    RecordStore
	collection *store.Collection
	logger     *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given record store.
// It returns an error if the record store is nil.
func NewTaskService(records RecordStore, log *slog.Logger) (TaskService, error) {
	if records == nil {
		return nil, fmt.Errorf("%w: record store cannot be nil", domain.ErrValidation)
	}

	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		records:    records,
		collection: store.NewCollection(),
		logger:     log.With(slog.String("component", "task_service")),
	}, nil
}

// reload replaces the in-memory collection with the backend's contents.
func (s *taskServiceImpl) reload(ctx context.Context) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records := s.records.Load(ctx)
	dropped := s.collection.LoadRecords(records)
	if dropped > 0 {
		log.Warn("dropped malformed task records during load",
			slog.Int("dropped", dropped),
			slog.Int("loaded", s.collection.Len()))
	}
}

// persist writes the full in-memory collection back to the backend.
func (s *taskServiceImpl) persist(ctx context.Context) error {
	return s.records.Save(ctx, s.collection.Records())
}

// Create implements TaskService.Create. The title is trimmed before storage;
// an empty or whitespace-only title fails validation before any mutation
// or I/O happens.
func (s *taskServiceImpl) Create(ctx context.Context, title string) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.reload(ctx)

	task, err := domain.NewTask(s.collection.NextID(), title)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("create_task", "invalid title", err)
	}

	s.collection.Add(task)
	if err := s.persist(ctx); err != nil {
		log.Error("failed to persist new task",
			slog.Int("task_id", task.ID),
			slog.String("error", err.Error()))
		return domain.Task{}, NewTaskServiceError("create_task", "failed to persist task", err)
	}

	log.Info("task created",
		slog.Int("task_id", task.ID),
		slog.String("title", task.Title))
	return task, nil
}

// List implements TaskService.List. It reloads from the backend so updates
// written by other processes sharing the file are visible, and never writes.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.Task, error) {
	s.reload(ctx)
	return s.collection.All(), nil
}

// Get implements TaskService.Get. It reloads like List does, so single-entity
// reads follow the same consistency policy as listing.
func (s *taskServiceImpl) Get(ctx context.Context, id int) (domain.Task, error) {
	s.reload(ctx)

	task, ok := s.collection.FindByID(id)
	if !ok {
		return domain.Task{}, NewTaskServiceError("get_task",
			fmt.Sprintf("task with ID %d not found", id), store.ErrTaskNotFound)
	}
	return task, nil
}

// Toggle implements TaskService.Toggle.
func (s *taskServiceImpl) Toggle(ctx context.Context, id int) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.reload(ctx)

	task, ok := s.collection.Toggle(id)
	if !ok {
		return domain.Task{}, NewTaskServiceError("toggle_task",
			fmt.Sprintf("task with ID %d not found", id), store.ErrTaskNotFound)
	}

	if err := s.persist(ctx); err != nil {
		log.Error("failed to persist toggled task",
			slog.Int("task_id", id),
			slog.String("error", err.Error()))
		return domain.Task{}, NewTaskServiceError("toggle_task", "failed to persist task", err)
	}

	log.Info("task toggled",
		slog.Int("task_id", task.ID),
		slog.Bool("done", task.Done))
	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.reload(ctx)

	if !s.collection.RemoveByID(id) {
		return NewTaskServiceError("delete_task",
			fmt.Sprintf("task with ID %d not found", id), store.ErrTaskNotFound)
	}

	if err := s.persist(ctx); err != nil {
		log.Error("failed to persist task deletion",
			slog.Int("task_id", id),
			slog.String("error", err.Error()))
		return NewTaskServiceError("delete_task", "failed to persist deletion", err)
	}

	log.Info("task deleted", slog.Int("task_id", id))
	return nil
}
