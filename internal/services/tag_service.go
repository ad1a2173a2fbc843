package services

import (
	"context"
	"strings"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/errors"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
)

// TagService handles tag business logic: creating single/range/ongoing
// tags, closing ongoing ones and removing tags again.
type TagService interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, label, kind, startDate, endDate string) (*models.Tag, error)
	CloseTag(ctx context.Context, label, endDate string) error
	DeleteTags(ctx context.Context, startDate, label string) (int64, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return tags, nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func (s *tagService) CreateTag(ctx context.Context, label, kind, startDate, endDate string) (*models.Tag, error) {
	log := logger.FromContext(ctx)

	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.NewValidationError("label", "cannot be empty")
	}

	tag := models.Tag{Label: label, StartDate: startDate}

	switch kind {
	case models.TagKindSingle:
		if !validDate(startDate) {
			return nil, errors.NewValidationError("start_date", "must be YYYY-MM-DD")
		}
		end := startDate
		tag.EndDate = &end
	case models.TagKindRange:
		// One side may be blank; the overlay clamps it to the window.
		if startDate != "" && !validDate(startDate) {
			return nil, errors.NewValidationError("start_date", "must be YYYY-MM-DD")
		}
		if !validDate(endDate) {
			return nil, errors.NewValidationError("end_date", "must be YYYY-MM-DD")
		}
		if startDate != "" && endDate < startDate {
			return nil, errors.NewValidationError("end_date", "must not precede start_date")
		}
		tag.EndDate = &endDate
	case models.TagKindOngoing:
		if !validDate(startDate) {
			return nil, errors.NewValidationError("start_date", "must be YYYY-MM-DD")
		}
	default:
		return nil, errors.NewValidationError("type", "must be single, range or ongoing")
	}

	id, err := s.tagRepo.Insert(ctx, tag)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, errors.NewConflictError("tag already exists for that label and date")
		}
		log.Error("failed to create tag: %v", err)
		return nil, errors.NewInternalError(err)
	}
	tag.ID = id

	log.Info("tag created: label=%s, kind=%s", tag.Label, tag.Kind())
	return &tag, nil
}

func (s *tagService) CloseTag(ctx context.Context, label, endDate string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.NewValidationError("label", "cannot be empty")
	}
	if !validDate(endDate) {
		return errors.NewValidationError("end_date", "must be YYYY-MM-DD")
	}

	affected, err := s.tagRepo.SetEnd(ctx, label, endDate)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if affected == 0 {
		return errors.NewNotFoundError("ongoing tag", label)
	}
	return nil
}

func (s *tagService) DeleteTags(ctx context.Context, startDate, label string) (int64, error) {
	if !validDate(startDate) {
		return 0, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}

	affected, err := s.tagRepo.Delete(ctx, startDate, label)
	if err != nil {
		return 0, errors.NewInternalError(err)
	}
	if affected == 0 {
		return 0, errors.NewNotFoundError("tag", startDate)
	}
	return affected, nil
}
