package services

import (
	"context"

	"github.com/YairShachar/sc2-replay-analyzer/internal/errors"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

// ReplayService handles replay-related business logic
type ReplayService interface {
	ListReplays(ctx context.Context, filter models.ReplayFilter) ([]models.Replay, error)
	GetReplay(ctx context.Context, id string) (*models.Replay, error)
}

type replayService struct {
	replayRepo repository.ReplayRepository
}

// NewReplayService creates a new ReplayService
func NewReplayService(replayRepo repository.ReplayRepository) ReplayService {
	return &replayService{replayRepo: replayRepo}
}

func (s *replayService) ListReplays(ctx context.Context, filter models.ReplayFilter) ([]models.Replay, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing replays: matchup=%s, result=%s, days=%d, limit=%d",
		filter.Matchup, filter.Result, filter.Days, filter.Limit)

	replays, err := s.replayRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list replays: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return replays, nil
}

func (s *replayService) GetReplay(ctx context.Context, id string) (*models.Replay, error) {
	log := logger.FromContext(ctx)

	replay, err := s.replayRepo.Get(ctx, id)
	if err != nil {
		log.Debug("replay lookup failed: %v", err)
		return nil, errors.NewNotFoundError("replay", id)
	}
	return replay, nil
}
