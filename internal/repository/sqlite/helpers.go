package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// daysCutoff builds a played_at cutoff expression for a "last N days" filter.
func daysCutoff(days int) squirrel.Sqlizer {
	return squirrel.Expr("played_at >= datetime('now', ?)", fmt.Sprintf("-%d days", days))
}

// applyReplayFilter adds the shared WHERE clauses of a ReplayFilter.
func applyReplayFilter(query squirrel.SelectBuilder, filter models.ReplayFilter) squirrel.SelectBuilder {
	if filter.Matchup != "" {
		query = query.Where(squirrel.Eq{"matchup": filter.Matchup})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	if filter.MapName != "" {
		query = query.Where(squirrel.Like{"map_name": "%" + filter.MapName + "%"})
	}
	if filter.Days > 0 {
		query = query.Where(daysCutoff(filter.Days))
	}
	return query
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
