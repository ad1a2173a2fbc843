package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// MockTagRepository is a mock implementation of repository.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) Insert(ctx context.Context, tag models.Tag) (int64, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagRepository) SetEnd(ctx context.Context, label, endDate string) (int64, error) {
	args := m.Called(ctx, label, endDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, startDate, label string) (int64, error) {
	args := m.Called(ctx, startDate, label)
	return args.Get(0).(int64), args.Error(1)
}
