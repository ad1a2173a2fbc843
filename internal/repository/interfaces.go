package repository

import (
	"context"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// ReplayRepository handles replay data access
type ReplayRepository interface {
	Get(ctx context.Context, id string) (*models.Replay, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter models.ReplayFilter) ([]models.Replay, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, replay models.Replay) error
	MMRHistory(ctx context.Context, limit int) ([]models.MMRPoint, error)
}

// TagRepository handles tag data access
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	Insert(ctx context.Context, tag models.Tag) (int64, error)
	SetEnd(ctx context.Context, label, endDate string) (int64, error)
	Delete(ctx context.Context, startDate, label string) (int64, error)
}

// StatsRepository handles aggregate statistics
type StatsRepository interface {
	Summary(ctx context.Context, filter models.ReplayFilter) (*models.SummaryStat, error)
	ByMatchup(ctx context.Context, days int) ([]models.MatchupStat, error)
}
