package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

const replayColumns = `replay_id, file_path, played_at, map_name, player_race, opponent_race, matchup, result,
       game_length_sec, player_mmr, opponent_mmr, player_apm, opponent_apm,
       workers_6m, workers_8m, workers_10m, bases_by_6m, bases_by_8m,
       army_supply_8m, army_minerals_8m, army_gas_8m, worker_kills_8m, worker_losses_8m, parsed_at`

type replayRepository struct {
	db *sql.DB
}

// NewReplayRepository creates a new ReplayRepository implementation
func NewReplayRepository(db *sql.DB) repository.ReplayRepository {
	return &replayRepository{db: db}
}

func scanReplay(scan func(dest ...any) error) (models.Replay, error) {
	var r models.Replay
	var playerMMR, opponentMMR sql.NullInt64
	err := scan(
		&r.ID, &r.FilePath, &r.PlayedAt, &r.MapName, &r.PlayerRace, &r.OpponentRace, &r.Matchup, &r.Result,
		&r.GameLengthSec, &playerMMR, &opponentMMR, &r.PlayerAPM, &r.OpponentAPM,
		&r.Workers6m, &r.Workers8m, &r.Workers10m, &r.BasesBy6m, &r.BasesBy8m,
		&r.ArmySupply8m, &r.ArmyMinerals8m, &r.ArmyGas8m, &r.WorkerKills8m, &r.WorkerLosses8m, &r.ParsedAt,
	)
	r.PlayerMMR = intPtr(playerMMR)
	r.OpponentMMR = intPtr(opponentMMR)
	return r, err
}

func (r *replayRepository) Get(ctx context.Context, id string) (*models.Replay, error) {
	log := logger.FromContext(ctx).WithPrefix("replay_repo")
	log.Debug("getting replay: id=%s", id)

	row := r.db.QueryRowContext(ctx, `SELECT `+replayColumns+` FROM replays WHERE replay_id = ?`, id)
	replay, err := scanReplay(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("replay not found: id=%s", id)
		} else {
			log.Error("failed to get replay: %v", err)
		}
		return nil, err
	}
	return &replay, nil
}

func (r *replayRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM replays WHERE replay_id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r *replayRepository) List(ctx context.Context, filter models.ReplayFilter) ([]models.Replay, error) {
	log := logger.FromContext(ctx).WithPrefix("replay_repo")
	log.Debug("listing replays with filter: matchup=%s, result=%s, map=%s, days=%d",
		filter.Matchup, filter.Result, filter.MapName, filter.Days)

	query := sqlBuilder.Select(
		"replay_id", "file_path", "played_at", "map_name", "player_race", "opponent_race", "matchup", "result",
		"game_length_sec", "player_mmr", "opponent_mmr", "player_apm", "opponent_apm",
		"workers_6m", "workers_8m", "workers_10m", "bases_by_6m", "bases_by_8m",
		"army_supply_8m", "army_minerals_8m", "army_gas_8m", "worker_kills_8m", "worker_losses_8m", "parsed_at",
	).From("replays")

	query = applyReplayFilter(query, filter)
	query = query.OrderBy("played_at DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list replays: %v", err)
		return nil, err
	}
	defer rows.Close()

	var replays []models.Replay
	for rows.Next() {
		replay, err := scanReplay(rows.Scan)
		if err != nil {
			log.Error("failed to scan replay row: %v", err)
			return nil, err
		}
		replays = append(replays, replay)
	}
	log.Debug("found %d replays", len(replays))
	return replays, rows.Err()
}

func (r *replayRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM replays`).Scan(&count)
	return count, err
}

func (r *replayRepository) Insert(ctx context.Context, replay models.Replay) error {
	log := logger.FromContext(ctx).WithPrefix("replay_repo")
	log.Debug("inserting replay: id=%s, map=%s, result=%s", replay.ID, replay.MapName, replay.Result)

	parsedAt := replay.ParsedAt
	if parsedAt.IsZero() {
		parsedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO replays (`+replayColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		replay.ID, replay.FilePath, replay.PlayedAt, replay.MapName, replay.PlayerRace, replay.OpponentRace,
		replay.Matchup, replay.Result, replay.GameLengthSec,
		nullInt(replay.PlayerMMR), nullInt(replay.OpponentMMR), replay.PlayerAPM, replay.OpponentAPM,
		replay.Workers6m, replay.Workers8m, replay.Workers10m, replay.BasesBy6m, replay.BasesBy8m,
		replay.ArmySupply8m, replay.ArmyMinerals8m, replay.ArmyGas8m, replay.WorkerKills8m, replay.WorkerLosses8m,
		parsedAt,
	)
	if err != nil {
		log.Error("failed to insert replay: %v", err)
	}
	return err
}

// MMRHistory returns the newest `limit` games that carry an MMR reading,
// reordered oldest first for graphing.
func (r *replayRepository) MMRHistory(ctx context.Context, limit int) ([]models.MMRPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("replay_repo")
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT played_at, player_mmr, result, matchup
FROM replays
WHERE player_mmr IS NOT NULL
ORDER BY played_at DESC
LIMIT ?
`, limit)
	if err != nil {
		log.Error("failed to query mmr history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var newestFirst []models.MMRPoint
	for rows.Next() {
		var playedAt time.Time
		var p models.MMRPoint
		if err := rows.Scan(&playedAt, &p.MMR, &p.Result, &p.Matchup); err != nil {
			log.Error("failed to scan mmr history row: %v", err)
			return nil, err
		}
		p.Date = playedAt.UTC().Format(time.RFC3339)
		newestFirst = append(newestFirst, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	points := make([]models.MMRPoint, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		points = append(points, newestFirst[i])
	}
	log.Debug("mmr history: %d points", len(points))
	return points, nil
}
