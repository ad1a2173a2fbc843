// Package scanner watches the replay folder and feeds newly finished
// games through the extractor into the database.
package scanner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/repository"
	"github.com/YairShachar/sc2-replay-analyzer/internal/worker"
)

// Queue accepts background jobs. Satisfied by *worker.Pool.
type Queue interface {
	Submit(worker.Job) error
}

type Scanner struct {
	folder     string
	interval   time.Duration
	replayRepo repository.ReplayRepository
	parser     Parser
	queue      Queue
	log        *logger.Logger
}

func New(folder string, interval time.Duration, replayRepo repository.ReplayRepository, parser Parser, queue Queue) *Scanner {
	return &Scanner{
		folder:     folder,
		interval:   interval,
		replayRepo: replayRepo,
		parser:     parser,
		queue:      queue,
		log:        logger.Default().WithPrefix("scanner"),
	}
}

// Run scans immediately, then on every tick until the context is
// cancelled.
func (s *Scanner) Run(ctx context.Context) {
	s.log.Info("scanner started: folder=%s, interval=%v", s.folder, s.interval)

	if _, err := s.ScanOnce(ctx); err != nil {
		s.log.Error("initial scan failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scanner stopped")
			return
		case <-ticker.C:
			if _, err := s.ScanOnce(ctx); err != nil {
				s.log.Error("scan failed: %v", err)
			}
		}
	}
}

// ScanOnce walks the replay folder once and enqueues an ingest job for
// every replay not yet in the database. It returns the number of jobs
// submitted.
func (s *Scanner) ScanOnce(ctx context.Context) (int, error) {
	if s.folder == "" {
		return 0, nil
	}

	paths, err := filepath.Glob(filepath.Join(s.folder, "*.SC2Replay"))
	if err != nil {
		return 0, fmt.Errorf("glob replay folder: %w", err)
	}

	submitted := 0
	for _, path := range paths {
		id, err := fileSHA1(path)
		if err != nil {
			s.log.Warn("failed to hash %s: %v", filepath.Base(path), err)
			continue
		}

		exists, err := s.replayRepo.Exists(ctx, id)
		if err != nil {
			return submitted, err
		}
		if exists {
			continue
		}

		job := &ingestJob{scanner: s, path: path, replayID: id}
		if err := s.queue.Submit(job); err != nil {
			s.log.Warn("%v", err)
			continue
		}
		submitted++
	}

	if submitted > 0 {
		s.log.Info("found %d new replay(s)", submitted)
	}
	return submitted, nil
}

// ingestJob parses one replay file and inserts the row.
type ingestJob struct {
	scanner  *Scanner
	path     string
	replayID string
}

func (j *ingestJob) Name() string {
	return "ingest:" + filepath.Base(j.path)
}

func (j *ingestJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	replay, err := j.scanner.parser.Parse(ctx, j.path)
	if err != nil {
		return err
	}
	if replay == nil {
		log.Debug("skipping replay without tracked player: %s", j.path)
		return nil
	}

	replay.ID = j.replayID
	replay.FilePath = j.path
	if replay.ParsedAt.IsZero() {
		replay.ParsedAt = time.Now().UTC()
	}

	return j.scanner.replayRepo.Insert(ctx, *replay)
}

func fileSHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
