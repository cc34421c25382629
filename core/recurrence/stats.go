package recurrence

import (
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/medrota/rotagap/core/model"
)

// RotationStats summarizes the occurrence pattern of one master rotation
// across all people holding it.
type RotationStats struct {
	Rotation      string    `json:"rotation"`
	Occurrences   int       `json:"occurrences"`
	People        int       `json:"people"`
	First         time.Time `json:"first"`
	Last          time.Time `json:"last"`
	MeanGapDays   float64   `json:"mean_gap_days"`
	StdDevGapDays float64   `json:"stddev_gap_days"`
}

// Stats computes occurrence statistics for each rotation in the master
// list. Gaps are the day differences between consecutive occurrence dates
// of the rotation over the whole dataset; with fewer than two occurrences
// the gap statistics are zero.
func Stats(records []model.Record, master []string) []RotationStats {
	byFold := make(map[string][]time.Time)
	people := make(map[string]map[string]struct{})
	for _, r := range records {
		fold := strings.ToLower(r.Rotation)
		byFold[fold] = append(byFold[fold], r.Date)
		if people[fold] == nil {
			people[fold] = make(map[string]struct{})
		}
		people[fold][r.Person] = struct{}{}
	}

	out := make([]RotationStats, 0, len(master))
	for _, name := range master {
		fold := strings.ToLower(name)
		dates := byFold[fold]
		st := RotationStats{Rotation: name, Occurrences: len(dates), People: len(people[fold])}
		if len(dates) == 0 {
			out = append(out, st)
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		st.First, st.Last = dates[0], dates[len(dates)-1]
		if len(dates) > 1 {
			gaps := make([]float64, len(dates)-1)
			for i := 1; i < len(dates); i++ {
				gaps[i-1] = dates[i].Sub(dates[i-1]).Hours() / 24
			}
			st.MeanGapDays = stat.Mean(gaps, nil)
			if len(gaps) > 1 {
				st.StdDevGapDays = stat.StdDev(gaps, nil)
			}
		}
		out = append(out, st)
	}
	return out
}
