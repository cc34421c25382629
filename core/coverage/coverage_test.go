package coverage

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/medrota/rotagap/core/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-02")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Year != 2026 || m.Month != time.February {
		t.Fatalf("bad month %+v", m)
	}
	if m.String() != "2026-02" {
		t.Fatalf("string %q", m.String())
	}
	if !m.Start().Equal(day(2026, 2, 1)) || !m.End().Equal(day(2026, 3, 1)) {
		t.Fatalf("bad interval [%v, %v)", m.Start(), m.End())
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, in := range []string{"", "2026-2", "02-2026", "2026/02", "2026-13", "2026-00", "garbage", "2026-02-01"} {
		if _, err := ParseMonth(in); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth for %q, got %v", in, err)
		}
	}
}

func TestMonthEndRollsOverYear(t *testing.T) {
	m := Month{Year: 2025, Month: time.December}
	if !m.End().Equal(day(2026, 1, 1)) {
		t.Fatalf("end %v", m.End())
	}
}

func TestUnfilled(t *testing.T) {
	records := []model.Record{
		{Person: "A", Rotation: "Cardiology", Date: day(2026, 2, 10)},
		{Person: "B", Rotation: "Wards", Date: day(2026, 1, 31)},
	}
	master := []string{"Cardiology", "Nephrology*", "Wards"}
	m := Month{Year: 2026, Month: time.February}
	got := Unfilled(records, master, m)
	want := []string{"Nephrology", "Wards"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unfilled %v, want %v", got, want)
	}
}

func TestUnfilledStarStripping(t *testing.T) {
	records := []model.Record{
		{Person: "A", Rotation: "Cardiology", Date: day(2026, 2, 1)},
	}
	master := []string{"Cardiology", "Nephrology*"}
	got := Unfilled(records, master, Month{Year: 2026, Month: time.February})
	if !reflect.DeepEqual(got, []string{"Nephrology"}) {
		t.Fatalf("unfilled %v", got)
	}
}

func TestUnfilledHalfOpenInterval(t *testing.T) {
	master := []string{"Wards"}
	m := Month{Year: 2026, Month: time.February}

	onFirst := []model.Record{{Person: "A", Rotation: "Wards", Date: day(2026, 2, 1)}}
	if got := Unfilled(onFirst, master, m); len(got) != 0 {
		t.Fatalf("first day counts as coverage, got %v", got)
	}
	onNextFirst := []model.Record{{Person: "A", Rotation: "Wards", Date: day(2026, 3, 1)}}
	if got := Unfilled(onNextFirst, master, m); len(got) != 1 {
		t.Fatalf("first day of next month is outside, got %v", got)
	}
}

func TestUnfilledCaseInsensitiveMatch(t *testing.T) {
	records := []model.Record{
		{Person: "A", Rotation: "cardiology", Date: day(2026, 2, 2)},
	}
	got := Unfilled(records, []string{"Cardiology"}, Month{Year: 2026, Month: time.February})
	if len(got) != 0 {
		t.Fatalf("case variants should fill coverage, got %v", got)
	}
}

func TestUnfilledSortedAndDeduplicated(t *testing.T) {
	master := []string{"zebra Clinic", "Apple Service", "APPLE SERVICE"}
	got := Unfilled(nil, master, Month{Year: 2026, Month: time.February})
	want := []string{"Apple Service", "zebra Clinic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unfilled %v, want %v", got, want)
	}
}

func TestUnfilledEmptyInputs(t *testing.T) {
	if got := Unfilled(nil, nil, Month{Year: 2026, Month: time.February}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	records := []model.Record{{Person: "A", Rotation: "Wards", Date: day(2026, 2, 2)}}
	if got := Unfilled(records, nil, Month{Year: 2026, Month: time.February}); len(got) != 0 {
		t.Fatalf("empty master yields empty result, got %v", got)
	}
}

func TestUnfilledOrderIndependence(t *testing.T) {
	records := []model.Record{
		{Person: "A", Rotation: "Cardiology", Date: day(2026, 2, 10)},
		{Person: "B", Rotation: "Wards", Date: day(2026, 2, 11)},
		{Person: "C", Rotation: "Nights", Date: day(2026, 1, 11)},
	}
	master := []string{"Cardiology", "Nights", "Wards"}
	m := Month{Year: 2026, Month: time.February}
	base := Unfilled(records, master, m)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := Unfilled(shuffled, master, m); !reflect.DeepEqual(got, base) {
			t.Fatalf("order dependent: %v vs %v", got, base)
		}
	}
}
