package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/tick/internal/domain"
	"github.com/phrazzld/tick/internal/service"
	"github.com/phrazzld/tick/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "task not found",
			err:  store.ErrTaskNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "wrapped not found",
			err:  service.NewTaskServiceError("get_task", "task with ID 7 not found", store.ErrTaskNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "empty title",
			err:  fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyTitle),
			want: http.StatusBadRequest,
		},
		{
			name: "save failure",
			err:  store.ErrSaveFailed,
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "Task title cannot be empty",
		GetSafeErrorMessage(service.NewTaskServiceError("create_task", "invalid title", domain.ErrEmptyTitle)))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("internal detail")),
		"raw error text must never leak to clients")
}
