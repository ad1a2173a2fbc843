package models

import (
	"encoding/json"
	"time"
)

// Tag kinds. A tag is anchored to one date (single), a closed date span
// (range), or runs open-ended from its start date (ongoing).
const (
	TagKindSingle  = "single"
	TagKindRange   = "range"
	TagKindOngoing = "ongoing"
)

// Tag is a labeled annotation over the replay timeline. Dates are
// YYYY-MM-DD strings. EndDate is nil for ongoing tags and equals
// StartDate for single-day tags.
type Tag struct {
	ID        int64     `json:"-"`
	Label     string    `json:"label"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// MarshalJSON includes the derived kind as the "type" field.
func (t Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return json.Marshal(struct {
		alias
		Type string `json:"type"`
	}{alias(t), t.Kind()})
}

// Kind derives the tag kind from its dates.
func (t Tag) Kind() string {
	if t.EndDate == nil {
		return TagKindOngoing
	}
	if *t.EndDate == t.StartDate {
		return TagKindSingle
	}
	return TagKindRange
}
