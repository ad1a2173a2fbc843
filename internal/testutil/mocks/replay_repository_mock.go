package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// MockReplayRepository is a mock implementation of repository.ReplayRepository
type MockReplayRepository struct {
	mock.Mock
}

func (m *MockReplayRepository) Get(ctx context.Context, id string) (*models.Replay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Replay), args.Error(1)
}

func (m *MockReplayRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReplayRepository) List(ctx context.Context, filter models.ReplayFilter) ([]models.Replay, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Replay), args.Error(1)
}

func (m *MockReplayRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReplayRepository) Insert(ctx context.Context, replay models.Replay) error {
	args := m.Called(ctx, replay)
	return args.Error(0)
}

func (m *MockReplayRepository) MMRHistory(ctx context.Context, limit int) ([]models.MMRPoint, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MMRPoint), args.Error(1)
}
