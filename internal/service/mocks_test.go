package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/tick/internal/store"
)

// MockRecordStore mocks the RecordStore interface.
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Load(ctx context.Context) []store.TaskRecord {
	args := m.Called(ctx)
	return args.Get(0).([]store.TaskRecord)
}

func (m *MockRecordStore) Save(ctx context.Context, records []store.TaskRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}
