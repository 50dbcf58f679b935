// Package api provides HTTP handlers for the API.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/tick/internal/api/shared"
	"github.com/phrazzld/tick/internal/platform/logger"
	"github.com/phrazzld/tick/internal/service"
	"github.com/phrazzld/tick/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// getPathTaskID extracts the integer task ID from the URL path.
// It writes a 400 response and returns false when the parameter is missing
// or not a positive integer.
func (h *TaskHandler) getPathTaskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("task ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return 0, false
	}

	id, err := strconv.Atoi(pathID)
	if err != nil || id < 1 {
		log.Warn("invalid task ID format", slog.String("task_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return 0, false
	}

	return id, true
}

// ListTasks handles GET /tasks requests.
// It returns the full task collection, reloaded from the backing file so
// writes from other processes sharing the file are visible.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task title cannot be empty")
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created task", slog.Int("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.getPathTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		h.respondTaskError(w, r, id, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ToggleTask handles PATCH /tasks/{id}/toggle requests.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.getPathTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(r.Context(), id)
	if err != nil {
		h.respondTaskError(w, r, id, err)
		return
	}

	log.Debug("toggled task", slog.Int("task_id", task.ID), slog.Bool("done", task.Done))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.getPathTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		h.respondTaskError(w, r, id, err)
		return
	}

	log.Debug("deleted task", slog.Int("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{Deleted: id})
}

// respondTaskError writes the error response for a failed single-task
// operation. Not-found responses name the requested ID.
func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, id int, err error) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)
	if store.IsNotFoundError(err) {
		safeMessage = fmt.Sprintf("Task with ID %d not found", id)
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
