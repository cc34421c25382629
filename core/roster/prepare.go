package roster

import (
	"strings"
	"time"

	"github.com/medrota/rotagap/core/model"
)

// dateLayouts covers the calendar date spellings seen in schedule exports.
// Times of day are ignored; only the calendar day matters downstream.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"1/2/06",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseDate parses a date-like field into a UTC calendar day. The boolean
// is false when no known layout matches.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Preparer turns raw export rows into clean records. It holds the excluder
// so the banned-term matcher is compiled once and shared across calls.
type Preparer struct {
	excluder *Excluder
}

// NewPreparer creates a Preparer using the given excluder.
func NewPreparer(ex *Excluder) *Preparer {
	return &Preparer{excluder: ex}
}

// Prepare returns the rows that survive all four checks: a parseable date,
// a non-empty normalized rotation that is not excluded, and a non-empty
// normalized person. Failing rows are dropped silently; bad dates and
// administrative entries are expected data, not errors. The input slice is
// never modified and the same input always yields the same output.
func (p *Preparer) Prepare(raws []model.RawRecord) []model.Record {
	out := make([]model.Record, 0, len(raws))
	for _, r := range raws {
		date, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		rotation := NormalizeRotation(r.Assignment)
		if rotation == "" || p.excluder.Excluded(rotation) {
			continue
		}
		person := NormalizePerson(r.Name)
		if person == "" {
			continue
		}
		out = append(out, model.Record{Person: person, Rotation: rotation, Date: date})
	}
	return out
}
