package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/medrota/rotagap/core/recurrence"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"unfilled": 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"unfilled":2}` {
		t.Fatalf("json %q", got)
	}
}

func TestWriteUnfilledCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUnfilledCSV(&buf, "2026-02", []string{"Nephrology", "Wards"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "month,rotation\n2026-02,Nephrology\n2026-02,Wards\n"
	if buf.String() != want {
		t.Fatalf("csv %q, want %q", buf.String(), want)
	}
}

func TestWriteUnfilledCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUnfilledCSV(&buf, "2026-02", nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "month,rotation\n" {
		t.Fatalf("csv %q", buf.String())
	}
}

func TestWriteStatsCSV(t *testing.T) {
	stats := []recurrence.RotationStats{
		{
			Rotation:      "Cards Consult",
			Occurrences:   6,
			People:        2,
			First:         time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			Last:          time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			MeanGapDays:   2,
			StdDevGapDays: 0.5,
		},
		{Rotation: "Rare", Occurrences: 1, People: 1},
	}
	var buf bytes.Buffer
	if err := WriteStatsCSV(&buf, stats); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines %v", lines)
	}
	if lines[0] != "rotation,occurrences,people,first,last,mean_gap_days,stddev_gap_days" {
		t.Fatalf("header %q", lines[0])
	}
	if lines[1] != "Cards Consult,6,2,2026-01-02,2026-01-12,2.00,0.50" {
		t.Fatalf("row %q", lines[1])
	}
	// zero times render as empty fields
	if lines[2] != "Rare,1,1,,,0.00,0.00" {
		t.Fatalf("row %q", lines[2])
	}
}
