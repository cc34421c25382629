package recurrence

import (
	"math"
	"testing"

	"github.com/medrota/rotagap/core/model"
)

func TestStatsBasics(t *testing.T) {
	recs := []model.Record{
		{Person: "A", Rotation: "Cards Consult", Date: day(2025, 1, 1)},
		{Person: "A", Rotation: "Cards Consult", Date: day(2025, 1, 3)},
		{Person: "B", Rotation: "cards consult", Date: day(2025, 1, 7)},
	}
	stats := Stats(recs, []string{"Cards Consult"})
	if len(stats) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(stats))
	}
	s := stats[0]
	if s.Occurrences != 3 || s.People != 2 {
		t.Fatalf("bad counts %+v", s)
	}
	if !s.First.Equal(day(2025, 1, 1)) || !s.Last.Equal(day(2025, 1, 7)) {
		t.Fatalf("bad range %+v", s)
	}
	// gaps are 2 and 4 days
	if math.Abs(s.MeanGapDays-3) > 1e-9 {
		t.Fatalf("mean gap %.3f", s.MeanGapDays)
	}
	if s.StdDevGapDays <= 0 {
		t.Fatalf("stddev %.3f", s.StdDevGapDays)
	}
}

func TestStatsSingleOccurrence(t *testing.T) {
	recs := []model.Record{{Person: "A", Rotation: "Wards", Date: day(2025, 2, 1)}}
	stats := Stats(recs, []string{"Wards"})
	s := stats[0]
	if s.Occurrences != 1 || s.MeanGapDays != 0 || s.StdDevGapDays != 0 {
		t.Fatalf("bad stats %+v", s)
	}
}

func TestStatsUnknownRotation(t *testing.T) {
	stats := Stats(nil, []string{"Ghost Rotation"})
	if len(stats) != 1 || stats[0].Occurrences != 0 {
		t.Fatalf("bad stats %+v", stats)
	}
}
