package coverage

import (
	"strings"

	"github.com/medrota/rotagap/core/model"
	"github.com/medrota/rotagap/core/recurrence"
)

// Unfilled returns the master rotations with zero occurrences inside the
// given month. The filled set is re-derived from the prepared records, not
// from any cached recurrence decision: coverage reflects literal
// occurrence. The result is case-insensitively sorted, deduplicated and has
// all "*" display markers stripped. An empty master list or a fully
// covered month yields an empty slice; neither is an error.
func Unfilled(records []model.Record, master []string, m Month) []string {
	start, end := m.Start(), m.End()
	filled := make(map[string]struct{})
	for _, r := range records {
		if !r.Date.Before(start) && r.Date.Before(end) {
			filled[strings.ToLower(r.Rotation)] = struct{}{}
		}
	}

	remainder := make([]string, 0, len(master))
	seen := make(map[string]struct{})
	for _, name := range master {
		fold := strings.ToLower(name)
		if _, ok := filled[fold]; ok {
			continue
		}
		if _, ok := seen[fold]; ok {
			continue
		}
		seen[fold] = struct{}{}
		remainder = append(remainder, name)
	}
	recurrence.SortRotations(remainder)

	out := make([]string, len(remainder))
	for i, name := range remainder {
		out[i] = strings.ReplaceAll(name, "*", "")
	}
	return out
}
