package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Summary(ctx context.Context, filter models.ReplayFilter) (*models.SummaryStat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SummaryStat), args.Error(1)
}

func (m *MockStatsRepository) ByMatchup(ctx context.Context, days int) ([]models.MatchupStat, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchupStat), args.Error(1)
}
