package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Summary(ctx context.Context, filter models.ReplayFilter) (*models.SummaryStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing summary stats: matchup=%s, days=%d", filter.Matchup, filter.Days)

	query := sqlBuilder.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN result = 'Win' THEN 1 ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN result = 'Loss' THEN 1 ELSE 0 END), 0)",
		"COALESCE(MAX(player_mmr), 0)",
		"COALESCE(AVG(player_apm), 0)",
		"COALESCE(AVG(game_length_sec), 0)",
	).From("replays")
	query = applyReplayFilter(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s models.SummaryStat
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(
		&s.TotalGames, &s.Wins, &s.Losses, &s.PeakMMR, &s.AvgAPM, &s.AvgGameLength,
	)
	if err != nil {
		log.Error("failed to compute summary stats: %v", err)
		return nil, err
	}

	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = math.Round(float64(s.Wins)/float64(decided)*1000) / 10
	}

	current, err := r.currentMMR(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.CurrentMMR = current

	return &s, nil
}

// currentMMR is the MMR of the newest game with a reading, under the
// same filter as the summary.
func (r *statsRepository) currentMMR(ctx context.Context, filter models.ReplayFilter) (int, error) {
	query := sqlBuilder.Select("player_mmr").From("replays").
		Where("player_mmr IS NOT NULL")
	query = applyReplayFilter(query, filter)
	query = query.OrderBy("played_at DESC").Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var mmr int
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&mmr)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return mmr, err
}

func (r *statsRepository) ByMatchup(ctx context.Context, days int) ([]models.MatchupStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing matchup stats: days=%d", days)

	query := sqlBuilder.Select(
		"matchup",
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN result = 'Win' THEN 1 ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN result = 'Loss' THEN 1 ELSE 0 END), 0)",
		"COALESCE(AVG(workers_8m), 0)",
	).From("replays").Where("matchup != ''")
	if days > 0 {
		query = query.Where(daysCutoff(days))
	}
	query = query.GroupBy("matchup").OrderBy("COUNT(*) DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query matchup stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.MatchupStat
	for rows.Next() {
		var s models.MatchupStat
		if err := rows.Scan(&s.Matchup, &s.TotalGames, &s.Wins, &s.Losses, &s.AvgWorkers8m); err != nil {
			log.Error("failed to scan matchup stat row: %v", err)
			return nil, err
		}
		if decided := s.Wins + s.Losses; decided > 0 {
			s.WinRate = math.Round(float64(s.Wins)/float64(decided)*1000) / 10
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
