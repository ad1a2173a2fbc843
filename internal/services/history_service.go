package services

import (
	"context"

	"github.com/YairShachar/sc2-replay-analyzer/internal/errors"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

// HistoryService assembles the MMR history feed consumed by the graph
// overlay.
type HistoryService interface {
	GetHistory(ctx context.Context, limit int) (*models.MMRHistory, error)
}

type historyService struct {
	replayRepo repository.ReplayRepository
	tagRepo    repository.TagRepository
	playerName string
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(replayRepo repository.ReplayRepository, tagRepo repository.TagRepository, playerName string) HistoryService {
	return &historyService{
		replayRepo: replayRepo,
		tagRepo:    tagRepo,
		playerName: playerName,
	}
}

func (s *historyService) GetHistory(ctx context.Context, limit int) (*models.MMRHistory, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting mmr history: limit=%d", limit)

	points, err := s.replayRepo.MMRHistory(ctx, limit)
	if err != nil {
		log.Error("failed to get mmr history: %v", err)
		return nil, errors.NewInternalError(err)
	}

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		log.Error("failed to list tags: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if points == nil {
		points = []models.MMRPoint{}
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	return &models.MMRHistory{
		PlayerName: s.playerName,
		Data:       points,
		Tags:       tags,
	}, nil
}
