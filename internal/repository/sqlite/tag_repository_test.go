package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository/sqlite"
	"github.com/YairShachar/sc2-replay-analyzer/internal/testutil"
)

func strp(s string) *string { return &s }

type TagRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.TagRepository
}

func (s *TagRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewTagRepository(s.db)
}

func (s *TagRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *TagRepositorySuite) TestInsertAndList() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Tag{Label: "new build", StartDate: "2025-03-01"})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	_, err = s.repo.Insert(ctx, models.Tag{
		Label:     "practice block",
		StartDate: "2025-02-10",
		EndDate:   strp("2025-02-20"),
	})
	s.Require().NoError(err)

	tags, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(tags, 2)
	// ordered by start date
	s.Assert().Equal("practice block", tags[0].Label)
	s.Require().NotNil(tags[0].EndDate)
	s.Assert().Equal("2025-02-20", *tags[0].EndDate)
	s.Assert().Equal("new build", tags[1].Label)
	s.Assert().Nil(tags[1].EndDate)
}

func (s *TagRepositorySuite) TestInsert_DuplicateLabelAndDate() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Tag{Label: "dup", StartDate: "2025-03-01"})
	s.Require().NoError(err)

	_, err = s.repo.Insert(ctx, models.Tag{Label: "dup", StartDate: "2025-03-01"})
	s.Assert().Error(err)
}

func (s *TagRepositorySuite) TestSetEnd() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Tag{Label: "openbuild", StartDate: "2025-03-01"})
	s.Require().NoError(err)

	affected, err := s.repo.SetEnd(ctx, "openbuild", "2025-03-15")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), affected)

	tags, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(tags, 1)
	s.Require().NotNil(tags[0].EndDate)
	s.Assert().Equal("2025-03-15", *tags[0].EndDate)
	s.Assert().Equal(models.TagKindRange, tags[0].Kind())
}

func (s *TagRepositorySuite) TestSetEnd_NoOngoingTag() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Tag{
		Label:     "closed",
		StartDate: "2025-03-01",
		EndDate:   strp("2025-03-05"),
	})
	s.Require().NoError(err)

	affected, err := s.repo.SetEnd(ctx, "closed", "2025-03-15")
	s.Require().NoError(err)
	s.Assert().Equal(int64(0), affected)
}

func (s *TagRepositorySuite) TestDelete_ByDate() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Tag{Label: "a", StartDate: "2025-03-01"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Tag{Label: "b", StartDate: "2025-03-01"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Tag{Label: "c", StartDate: "2025-04-01"})
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(ctx, "2025-03-01", "")
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), deleted)

	tags, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(tags, 1)
	s.Assert().Equal("c", tags[0].Label)
}

func (s *TagRepositorySuite) TestDelete_ByDateAndLabel() {
	ctx := context.Background()

	_, err := s.repo.Insert(ctx, models.Tag{Label: "a", StartDate: "2025-03-01"})
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, models.Tag{Label: "b", StartDate: "2025-03-01"})
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(ctx, "2025-03-01", "a")
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), deleted)

	tags, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(tags, 1)
	s.Assert().Equal("b", tags[0].Label)
}

func TestTagRepositorySuite(t *testing.T) {
	suite.Run(t, new(TagRepositorySuite))
}
