package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/medrota/rotagap/core/recurrence"
)

// WriteJSON writes v to w in JSON format.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

// WriteUnfilledCSV writes the unfilled rotation list to w in CSV format.
func WriteUnfilledCSV(w io.Writer, month string, rotations []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"month", "rotation"}); err != nil {
		return err
	}
	for _, r := range rotations {
		if err := cw.Write([]string{month, r}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatsCSV writes rotation statistics to w in CSV format.
func WriteStatsCSV(w io.Writer, stats []recurrence.RotationStats) error {
	cw := csv.NewWriter(w)
	header := []string{"rotation", "occurrences", "people", "first", "last", "mean_gap_days", "stddev_gap_days"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range stats {
		rec := []string{
			s.Rotation,
			strconv.Itoa(s.Occurrences),
			strconv.Itoa(s.People),
			formatDay(s.First),
			formatDay(s.Last),
			strconv.FormatFloat(s.MeanGapDays, 'f', 2, 64),
			strconv.FormatFloat(s.StdDevGapDays, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
