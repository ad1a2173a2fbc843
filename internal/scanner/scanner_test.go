package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
	"github.com/YairShachar/sc2-replay-analyzer/internal/testutil/mocks"
	"github.com/YairShachar/sc2-replay-analyzer/internal/worker"
)

// syncQueue runs submitted jobs inline, no pool involved.
type syncQueue struct {
	jobs []worker.Job
}

func (q *syncQueue) Submit(job worker.Job) error {
	q.jobs = append(q.jobs, job)
	return job.Run(context.Background())
}

type fakeParser struct {
	replay *models.Replay
	err    error
	paths  []string
}

func (p *fakeParser) Parse(ctx context.Context, path string) (*models.Replay, error) {
	p.paths = append(p.paths, path)
	if p.err != nil {
		return nil, p.err
	}
	if p.replay == nil {
		return nil, nil
	}
	cp := *p.replay
	return &cp, nil
}

func writeReplayFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanOnce_SubmitsNewReplays(t *testing.T) {
	dir := t.TempDir()
	writeReplayFile(t, dir, "game1.SC2Replay", "replay-one")
	writeReplayFile(t, dir, "game2.SC2Replay", "replay-two")
	writeReplayFile(t, dir, "notes.txt", "ignored")

	repo := new(mocks.MockReplayRepository)
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	parser := &fakeParser{replay: &models.Replay{
		PlayedAt: time.Now().UTC(),
		MapName:  "Oceanborn LE",
		Result:   models.ResultWin,
	}}
	queue := &syncQueue{}

	s := New(dir, time.Minute, repo, parser, queue)
	submitted, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, submitted)
	assert.Len(t, parser.paths, 2)
	repo.AssertNumberOfCalls(t, "Insert", 2)
}

func TestScanOnce_SkipsKnownReplays(t *testing.T) {
	dir := t.TempDir()
	writeReplayFile(t, dir, "game1.SC2Replay", "replay-one")

	repo := new(mocks.MockReplayRepository)
	repo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	s := New(dir, time.Minute, repo, &fakeParser{}, &syncQueue{})
	submitted, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, submitted)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestScanOnce_EmptyFolderConfigured(t *testing.T) {
	s := New("", time.Minute, new(mocks.MockReplayRepository), &fakeParser{}, &syncQueue{})
	submitted, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, submitted)
}

func TestIngestJob_SetsIDAndPath(t *testing.T) {
	dir := t.TempDir()
	path := writeReplayFile(t, dir, "game1.SC2Replay", "replay-one")

	var inserted models.Replay
	repo := new(mocks.MockReplayRepository)
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.Replay)
	}).Return(nil)

	parser := &fakeParser{replay: &models.Replay{Result: models.ResultLoss}}
	s := New(dir, time.Minute, repo, parser, &syncQueue{})

	_, err := s.ScanOnce(context.Background())
	require.NoError(t, err)

	wantID, err := fileSHA1(path)
	require.NoError(t, err)
	assert.Equal(t, wantID, inserted.ID)
	assert.Equal(t, path, inserted.FilePath)
	assert.False(t, inserted.ParsedAt.IsZero())
}

func TestIngestJob_SkipsReplayWithoutTrackedPlayer(t *testing.T) {
	dir := t.TempDir()
	writeReplayFile(t, dir, "game1.SC2Replay", "replay-one")

	repo := new(mocks.MockReplayRepository)
	repo.On("Exists", mock.Anything, mock.Anything).Return(false, nil)

	// parser returns nil replay, nil error for games without the player
	s := New(dir, time.Minute, repo, &fakeParser{}, &syncQueue{})
	submitted, err := s.ScanOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, submitted)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestFileSHA1_ContentAddressed(t *testing.T) {
	dir := t.TempDir()
	p1 := writeReplayFile(t, dir, "a.SC2Replay", "same-bytes")
	p2 := writeReplayFile(t, dir, "b.SC2Replay", "same-bytes")
	p3 := writeReplayFile(t, dir, "c.SC2Replay", "other-bytes")

	h1, err := fileSHA1(p1)
	require.NoError(t, err)
	h2, err := fileSHA1(p2)
	require.NoError(t, err)
	h3, err := fileSHA1(p3)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 40)
}
