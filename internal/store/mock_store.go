package store

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveAnalysis(ctx context.Context, a Analysis) (Analysis, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Analysis), args.Error(1)
}

func (m *MockStore) ListAnalyses(ctx context.Context, kind Kind, limit int) ([]Analysis, error) {
	args := m.Called(ctx, kind, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Analysis), args.Error(1)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
