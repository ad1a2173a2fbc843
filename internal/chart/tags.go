package chart

import (
	"hash/fnv"

	"github.com/YairShachar/sc2-replay-analyzer/internal/models"
)

// Tag color palette. Assignment is a deterministic hash of the label, so
// a tag keeps its color across polls; collisions between labels are fine.
var tagColors = []string{
	"#00d4ff", // cyan
	"#b966ff", // purple
	"#ffd700", // yellow
	"#ff6bcd", // pink
	"#00ffc8", // teal
	"#6b9dff", // blue
}

// TagColor returns the palette color for a tag label.
func TagColor(label string) string {
	h := fnv.New32a()
	h.Write([]byte(label))
	return tagColors[h.Sum32()%uint32(len(tagColors))]
}

// TagPosition is a tag resolved to chart indices, ready to be drawn as an
// overlay line (start == end) or band.
type TagPosition struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`
}

// dateIndex maps a YYYY-MM-DD date to the first and last chart index of
// points played on that date. Point dates may carry a time suffix; only
// the first ten characters are compared.
type dateIndex struct {
	first map[string]int
	last  map[string]int
}

func indexDates(points []models.MMRPoint) dateIndex {
	idx := dateIndex{
		first: make(map[string]int, len(points)),
		last:  make(map[string]int, len(points)),
	}
	for i, p := range points {
		day := p.Date
		if len(day) > 10 {
			day = day[:10]
		}
		if _, ok := idx.first[day]; !ok {
			idx.first[day] = i
		}
		idx.last[day] = i
	}
	return idx
}

// ResolveTags maps tags onto chart indices for the given window:
//   - single: spans the first through last point of its date, skipped
//     entirely when the date never occurs in the window;
//   - range: start and end resolve independently, a side whose date is
//     absent falls back to the matching window bound;
//   - ongoing: starts at its first match (window start if absent) and
//     always runs to the last point.
func ResolveTags(points []models.MMRPoint, tags []models.Tag) []TagPosition {
	if len(points) == 0 {
		return nil
	}
	idx := indexDates(points)
	end := len(points) - 1

	var out []TagPosition
	for _, t := range tags {
		pos := TagPosition{
			Label: t.Label,
			Kind:  t.Kind(),
			Color: TagColor(t.Label),
		}
		switch pos.Kind {
		case models.TagKindSingle:
			first, ok := idx.first[t.StartDate]
			if !ok {
				continue
			}
			pos.Start = first
			pos.End = idx.last[t.StartDate]
		case models.TagKindRange:
			pos.Start = 0
			if first, ok := idx.first[t.StartDate]; ok {
				pos.Start = first
			}
			pos.End = end
			if last, ok := idx.last[*t.EndDate]; ok {
				pos.End = last
			}
		case models.TagKindOngoing:
			pos.Start = 0
			if first, ok := idx.first[t.StartDate]; ok {
				pos.Start = first
			}
			pos.End = end
		}
		out = append(out, pos)
	}
	return out
}
