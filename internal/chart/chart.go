// Package chart holds the pure computations behind the MMR graph overlay:
// range filtering, summary stats, adaptive axis scaling and tag position
// resolution. Everything here is deterministic and side-effect free.
package chart

import (
	"math"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// Valid MMR interval. Readings outside of it are ladder glitches
// (placement games report 0, leavers occasionally report junk) and are
// dropped before any computation.
const (
	MinValidMMR = 1
	MaxValidMMR = 8000
)

// Axis scaling constants.
const (
	axisStep    = 50   // axis bounds snap outward to multiples of this
	minAxisSpan = 100  // effective data range is floored at this
	axisPadding = 0.15 // fractional padding added on each side
)

// Default axis when there is nothing to plot.
const (
	defaultAxisMin = 3000
	defaultAxisMax = 4000
)

// Summary are the headline numbers shown next to the graph.
type Summary struct {
	CurrentMMR int `json:"current_mmr"`
	Delta      int `json:"delta"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	WinRate    int `json:"win_rate"`
}

// Axis is the computed y-axis range, both bounds multiples of 50.
type Axis struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterValid drops points whose MMR falls outside the valid interval,
// preserving order.
func FilterValid(points []models.MMRPoint) []models.MMRPoint {
	out := make([]models.MMRPoint, 0, len(points))
	for _, p := range points {
		if p.MMR >= MinValidMMR && p.MMR <= MaxValidMMR {
			out = append(out, p)
		}
	}
	return out
}

// Summarize computes the headline stats over an already filtered window.
// An empty window yields all zeros, never an error. The delta is measured
// against the first point of the window; the win rate counts only decided
// games and is rounded to the nearest integer percent.
func Summarize(points []models.MMRPoint) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	s := Summary{
		CurrentMMR: points[len(points)-1].MMR,
		Delta:      points[len(points)-1].MMR - points[0].MMR,
	}
	for _, p := range points {
		switch p.Result {
		case models.ResultWin:
			s.Wins++
		case models.ResultLoss:
			s.Losses++
		}
	}
	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = int(math.Round(float64(s.Wins) / float64(decided) * 100))
	}
	return s
}

// ComputeAxis derives the y-axis range for a window of points: the raw
// data span is floored at minAxisSpan, padded by axisPadding on each side,
// then snapped outward to multiples of axisStep. The result always
// contains every point. An empty window yields the fixed default range.
func ComputeAxis(points []models.MMRPoint) Axis {
	if len(points) == 0 {
		return Axis{Min: defaultAxisMin, Max: defaultAxisMax}
	}

	lo := float64(points[0].MMR)
	hi := lo
	for _, p := range points[1:] {
		v := float64(p.MMR)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if span := hi - lo; span < minAxisSpan {
		grow := (minAxisSpan - span) / 2
		lo -= grow
		hi += grow
	}

	pad := (hi - lo) * axisPadding
	return Axis{
		Min: int(math.Floor((lo-pad)/axisStep)) * axisStep,
		Max: int(math.Ceil((hi+pad)/axisStep)) * axisStep,
	}
}
