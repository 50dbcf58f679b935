package api

import "github.com/phrazzld/tick/internal/domain"

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required"`

	// Done is accepted for wire compatibility with older clients but has no
	// effect: new tasks always start not done.
	Done bool `json:"done,omitempty"`
}

// TaskResponse represents the response data for a single task.
type TaskResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// DeleteTaskResponse confirms a successful deletion.
type DeleteTaskResponse struct {
	Deleted int `json:"deleted"`
}

// taskToResponse transforms a domain task into its API representation.
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:    task.ID,
		Title: task.Title,
		Done:  task.Done,
	}
}

// tasksToResponse transforms a task list into its API representation.
// The result is never nil so empty lists serialize as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = taskToResponse(t)
	}
	return out
}
