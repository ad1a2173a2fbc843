package sqlite

import (
	"context"
	"database/sql"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new TagRepository implementation
func NewTagRepository(db *sql.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, label, start_date, end_date, created_at
FROM tags
ORDER BY start_date, label
`)
	if err != nil {
		log.Error("failed to list tags: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		var endDate sql.NullString
		if err := rows.Scan(&t.ID, &t.Label, &t.StartDate, &endDate, &t.CreatedAt); err != nil {
			log.Error("failed to scan tag row: %v", err)
			return nil, err
		}
		if endDate.Valid {
			t.EndDate = &endDate.String
		}
		tags = append(tags, t)
	}
	log.Debug("found %d tags", len(tags))
	return tags, rows.Err()
}

func (r *tagRepository) Insert(ctx context.Context, tag models.Tag) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("inserting tag: label=%s, start=%s", tag.Label, tag.StartDate)

	var endDate sql.NullString
	if tag.EndDate != nil {
		endDate = sql.NullString{String: *tag.EndDate, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tags (label, start_date, end_date) VALUES (?, ?, ?)
`, tag.Label, tag.StartDate, endDate)
	if err != nil {
		log.Error("failed to insert tag: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

// SetEnd closes the most recent ongoing tag with the given label.
func (r *tagRepository) SetEnd(ctx context.Context, label, endDate string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("closing tag: label=%s, end=%s", label, endDate)

	res, err := r.db.ExecContext(ctx, `
UPDATE tags SET end_date = ?
WHERE label = ? AND end_date IS NULL
`, endDate, label)
	if err != nil {
		log.Error("failed to close tag: %v", err)
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes tags anchored at startDate. An empty label removes every
// tag on that date, otherwise only the matching label.
func (r *tagRepository) Delete(ctx context.Context, startDate, label string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("tag_repo")
	log.Debug("deleting tags: start=%s, label=%s", startDate, label)

	query := sqlBuilder.Delete("tags").Where("start_date = ?", startDate)
	if label != "" {
		query = query.Where("label = ?", label)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to delete tags: %v", err)
		return 0, err
	}
	return res.RowsAffected()
}
