package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// Parser turns a replay file into a Replay row. Implementations may
// return (nil, nil) when the configured player is not in the replay;
// such files are skipped, not retried.
type Parser interface {
	Parse(ctx context.Context, path string) (*models.Replay, error)
}

// ExecParser shells out to an external extractor binary that reads a
// .SC2Replay file and prints the parsed row as JSON on stdout. The
// replay wire format stays outside this codebase.
type ExecParser struct {
	binPath    string
	playerName string
	log        *logger.Logger
}

// NewExecParser creates an ExecParser for the given extractor binary.
func NewExecParser(binPath, playerName string) *ExecParser {
	if binPath == "" {
		binPath = "sc2extract"
	}
	return &ExecParser{
		binPath:    binPath,
		playerName: playerName,
		log:        logger.Default().WithPrefix("extractor"),
	}
}

func (p *ExecParser) Parse(ctx context.Context, path string) (*models.Replay, error) {
	log := logger.FromContext(ctx).WithPrefix("extractor")
	log.Debug("extracting replay: %s", path)

	cmd := exec.CommandContext(ctx, p.binPath, "--player", p.playerName, "--json", path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Error("extractor failed: %v, stderr=%s", err, stderr.String())
		return nil, fmt.Errorf("run extractor on %s: %w", path, err)
	}

	// An empty object means the player was not in this replay.
	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 || bytes.Equal(out, []byte("{}")) {
		log.Debug("player %s not found in replay %s", p.playerName, path)
		return nil, nil
	}

	var replay models.Replay
	if err := json.Unmarshal(out, &replay); err != nil {
		log.Error("failed to decode extractor output: %v", err)
		return nil, fmt.Errorf("decode extractor output for %s: %w", path, err)
	}
	return &replay, nil
}
