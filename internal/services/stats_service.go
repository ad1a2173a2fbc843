package services

import (
	"context"

	"github.com/YairShachar/sc2-replay-analyzer/internal/errors"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

// StatsService handles statistics-related business logic
type StatsService interface {
	GetSummary(ctx context.Context, filter models.ReplayFilter) (*models.SummaryStat, error)
	GetMatchupStats(ctx context.Context, days int) ([]models.MatchupStat, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetSummary(ctx context.Context, filter models.ReplayFilter) (*models.SummaryStat, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting summary stats: matchup=%s, days=%d", filter.Matchup, filter.Days)

	stats, err := s.statsRepo.Summary(ctx, filter)
	if err != nil {
		log.Error("failed to get summary stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}

func (s *statsService) GetMatchupStats(ctx context.Context, days int) ([]models.MatchupStat, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting matchup stats: days=%d", days)

	stats, err := s.statsRepo.ByMatchup(ctx, days)
	if err != nil {
		log.Error("failed to get matchup stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}
