package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository/sqlite"
	"github.com/YairShachar/sc2-replay-analyzer/internal/testutil"
)

func intp(v int) *int { return &v }

func testReplay(id string, playedAt time.Time) models.Replay {
	return models.Replay{
		ID:            id,
		FilePath:      "/replays/" + id + ".SC2Replay",
		PlayedAt:      playedAt,
		MapName:       "Alcyone LE",
		PlayerRace:    "Terr",
		OpponentRace:  "Zerg",
		Matchup:       "TvZ",
		Result:        models.ResultWin,
		GameLengthSec: 812,
		PlayerMMR:     intp(4000),
		OpponentMMR:   intp(3980),
		PlayerAPM:     210,
		OpponentAPM:   180,
		Workers6m:     28,
		Workers8m:     40,
		Workers10m:    52,
		BasesBy6m:     2,
		BasesBy8m:     3,
		ArmySupply8m:  45,
	}
}

type ReplayRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ReplayRepository
}

func (s *ReplayRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewReplayRepository(s.db)
}

func (s *ReplayRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ReplayRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	playedAt := time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC)

	err := s.repo.Insert(ctx, testReplay("abc123", playedAt))
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, "abc123")
	s.Require().NoError(err)
	s.Assert().Equal("Alcyone LE", got.MapName)
	s.Assert().Equal("TvZ", got.Matchup)
	s.Assert().Equal(models.ResultWin, got.Result)
	s.Require().NotNil(got.PlayerMMR)
	s.Assert().Equal(4000, *got.PlayerMMR)
}

func (s *ReplayRepositorySuite) TestGet_NotFound() {
	ctx := context.Background()
	replay, err := s.repo.Get(ctx, "missing")
	s.Assert().Error(err)
	s.Assert().Nil(replay)
}

func (s *ReplayRepositorySuite) TestExists() {
	ctx := context.Background()

	exists, err := s.repo.Exists(ctx, "abc123")
	s.Require().NoError(err)
	s.Assert().False(exists)

	err = s.repo.Insert(ctx, testReplay("abc123", time.Now().UTC()))
	s.Require().NoError(err)

	exists, err = s.repo.Exists(ctx, "abc123")
	s.Require().NoError(err)
	s.Assert().True(exists)
}

func (s *ReplayRepositorySuite) TestInsert_NullMMR() {
	ctx := context.Background()
	replay := testReplay("nomm", time.Now().UTC())
	replay.PlayerMMR = nil
	replay.OpponentMMR = nil

	s.Require().NoError(s.repo.Insert(ctx, replay))

	got, err := s.repo.Get(ctx, "nomm")
	s.Require().NoError(err)
	s.Assert().Nil(got.PlayerMMR)
	s.Assert().Nil(got.OpponentMMR)
}

func (s *ReplayRepositorySuite) TestList_WithFilters() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	r1 := testReplay("r1", base)
	r2 := testReplay("r2", base.Add(time.Hour))
	r2.Matchup = "TvP"
	r2.OpponentRace = "Prot"
	r2.Result = models.ResultLoss
	s.Require().NoError(s.repo.Insert(ctx, r1))
	s.Require().NoError(s.repo.Insert(ctx, r2))

	result, err := s.repo.List(ctx, models.ReplayFilter{Matchup: "TvZ", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("r1", result[0].ID)

	result, err = s.repo.List(ctx, models.ReplayFilter{Result: models.ResultLoss, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("r2", result[0].ID)
}

func (s *ReplayRepositorySuite) TestList_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		r := testReplay(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Hour))
		s.Require().NoError(s.repo.Insert(ctx, r))
	}

	result, err := s.repo.List(ctx, models.ReplayFilter{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(result, 3)
	s.Assert().Equal("r2", result[0].ID)
	s.Assert().Equal("r0", result[2].ID)
}

func (s *ReplayRepositorySuite) TestCount() {
	ctx := context.Background()

	count, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, count)

	s.Require().NoError(s.repo.Insert(ctx, testReplay("r1", time.Now().UTC())))
	s.Require().NoError(s.repo.Insert(ctx, testReplay("r2", time.Now().UTC().Add(time.Minute))))

	count, err = s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func (s *ReplayRepositorySuite) TestMMRHistory_OldestFirstAndFiltered() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mmrs := []*int{intp(4000), nil, intp(4050), intp(3900)}
	for i, mmr := range mmrs {
		r := testReplay(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Hour))
		r.PlayerMMR = mmr
		s.Require().NoError(s.repo.Insert(ctx, r))
	}

	points, err := s.repo.MMRHistory(ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(points, 3)
	s.Assert().Equal(4000, points[0].MMR)
	s.Assert().Equal(4050, points[1].MMR)
	s.Assert().Equal(3900, points[2].MMR)
	s.Assert().Equal("2025-03-01T12:00:00Z", points[0].Date)
}

func (s *ReplayRepositorySuite) TestMMRHistory_LimitKeepsNewest() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		r := testReplay(fmt.Sprintf("r%d", i), base.Add(time.Duration(i)*time.Hour))
		r.PlayerMMR = intp(4000 + i)
		s.Require().NoError(s.repo.Insert(ctx, r))
	}

	points, err := s.repo.MMRHistory(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(points, 2)
	// the two newest games, still oldest first
	s.Assert().Equal(4003, points[0].MMR)
	s.Assert().Equal(4004, points[1].MMR)
}

func TestReplayRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReplayRepositorySuite))
}
