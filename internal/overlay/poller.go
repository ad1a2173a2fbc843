// Package overlay maintains the live chart state behind the MMR graph:
// a poller re-fetches the history on a fixed interval and swaps in the
// recomputed points, axis, summary and tag positions.
package overlay

import (
	"context"
	"sync"
	"time"

	"github.com/YairShachar/sc2-replay-analyzer/internal/chart"
	"github.com/YairShachar/sc2-replay-analyzer/internal/logger"
	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// Source provides the raw MMR history feed, either from the local
// database or from a remote analyzer instance.
type Source interface {
	Fetch(ctx context.Context) (*models.MMRHistory, error)
}

// State is one fully computed chart configuration. Handlers receive a
// copy; only the poller mutates the live one.
type State struct {
	PlayerName string              `json:"player_name"`
	Points     []models.MMRPoint   `json:"points"`
	Axis       chart.Axis          `json:"axis"`
	Summary    chart.Summary       `json:"summary"`
	Tags       []chart.TagPosition `json:"tags"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type Poller struct {
	source   Source
	interval time.Duration
	log      *logger.Logger

	mu    sync.RWMutex
	state State
}

func NewPoller(source Source, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
		log:      logger.Default().WithPrefix("overlay"),
		state: State{
			Axis: chart.ComputeAxis(nil),
		},
	}
}

// Run refreshes immediately, then on every tick until the context is
// cancelled. A failed refresh keeps the previous state on screen.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("overlay poller started: interval=%v", p.interval)

	if err := p.Refresh(ctx); err != nil {
		p.log.Error("initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("overlay poller stopped")
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				p.log.Error("refresh failed, keeping previous state: %v", err)
			}
		}
	}
}

// Refresh runs one fetch-filter-compute cycle and swaps in the result.
func (p *Poller) Refresh(ctx context.Context) error {
	history, err := p.source.Fetch(ctx)
	if err != nil {
		return err
	}

	points := chart.FilterValid(history.Data)
	next := State{
		PlayerName: history.PlayerName,
		Points:     points,
		Axis:       chart.ComputeAxis(points),
		Summary:    chart.Summarize(points),
		Tags:       chart.ResolveTags(points, history.Tags),
		UpdatedAt:  time.Now().UTC(),
	}

	p.mu.Lock()
	p.state = next
	p.mu.Unlock()

	p.log.Debug("state refreshed: %d points, axis [%d, %d]", len(points), next.Axis.Min, next.Axis.Max)
	return nil
}

// State returns a copy of the current chart state.
func (p *Poller) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}
