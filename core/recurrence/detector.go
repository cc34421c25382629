package recurrence

import (
	"sort"
	"strings"
	"time"

	"github.com/medrota/rotagap/core/model"
)

// Params defines the recurrence threshold loaded from configuration.
// A rotation counts as a real recurring obligation when one person holds it
// at least MinCount times inside a WindowDays span.
type Params struct {
	MinCount   int `json:"min_count" yaml:"min_count"`
	WindowDays int `json:"window_days" yaml:"window_days"`
}

// SetDefaults applies the standard threshold: six occurrences within one
// academic quarter.
func (p *Params) SetDefaults() {
	if p.MinCount <= 0 {
		p.MinCount = 6
	}
	if p.WindowDays <= 0 {
		p.WindowDays = 92
	}
}

// Detect scans prepared records and returns the rotations with repeat use,
// keyed by their case-folded name and mapped to a canonical display
// spelling. Rotation identity is case-insensitive; the canonical spelling
// is the lexicographically smallest variant seen, so the result does not
// depend on input order.
//
// Qualification is evaluated per (person, rotation) group: the group's
// occurrence dates are sorted ascending (same-day duplicates kept) and a
// two-pointer window is slid over them. A span of exactly WindowDays is
// still inside the window. The scan of a group stops at its first
// qualifying window, and a rotation qualifies as soon as any one person's
// pattern does.
func Detect(records []model.Record, p Params) map[string]string {
	p.SetDefaults()
	window := time.Duration(p.WindowDays) * 24 * time.Hour

	type groupKey struct {
		person   string
		rotation string
	}
	groups := make(map[groupKey][]time.Time)
	display := make(map[string]string)
	for _, r := range records {
		fold := strings.ToLower(r.Rotation)
		if d, ok := display[fold]; !ok || r.Rotation < d {
			display[fold] = r.Rotation
		}
		k := groupKey{person: r.Person, rotation: fold}
		groups[k] = append(groups[k], r.Date)
	}

	qualifying := make(map[string]string)
	for k, dates := range groups {
		if _, ok := qualifying[k.rotation]; ok {
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		i := 0
		for j := range dates {
			for dates[j].Sub(dates[i]) > window {
				i++
			}
			if j-i+1 >= p.MinCount {
				qualifying[k.rotation] = display[k.rotation]
				break
			}
		}
	}
	return qualifying
}

// BuildMasterList orders the qualifying set case-insensitively with the
// natural string order breaking ties. It performs no filtering of its own.
func BuildMasterList(qualifying map[string]string) []string {
	out := make([]string, 0, len(qualifying))
	for _, name := range qualifying {
		out = append(out, name)
	}
	SortRotations(out)
	return out
}

// SortRotations sorts rotation names in place using a case-insensitive key
// and the natural string order as tiebreak.
func SortRotations(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}
