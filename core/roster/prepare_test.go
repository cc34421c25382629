package roster

import (
	"reflect"
	"testing"
	"time"

	"github.com/medrota/rotagap/core/model"
)

func newTestPreparer(t *testing.T) *Preparer {
	t.Helper()
	return NewPreparer(NewDefaultExcluder())
}

func TestPrepareDropsInvalidRows(t *testing.T) {
	p := newTestPreparer(t)
	raws := []model.RawRecord{
		{Name: "Lee, Sam", Assignment: "Cards Consult", Date: "2025-01-02"},
		{Name: "Lee, Sam", Assignment: "Cards Consult", Date: "not a date"},
		{Name: "Lee, Sam", Assignment: "  , am ", Date: "2025-01-02"},
		{Name: "Lee, Sam", Assignment: "Noon Conference", Date: "2025-01-02"},
		{Name: "  '' ", Assignment: "Cards Consult", Date: "2025-01-02"},
	}
	got := p.Prepare(raws)
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving record, got %d", len(got))
	}
	want := model.Record{
		Person:   "Lee, Sam",
		Rotation: "Cards Consult",
		Date:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	if got[0] != want {
		t.Fatalf("bad record %+v", got[0])
	}
}

func TestPrepareNormalizesFields(t *testing.T) {
	p := newTestPreparer(t)
	raws := []model.RawRecord{
		{Name: ` "O'Brien, Pat" `, Assignment: "  Night   Float, pm ", Date: "1/2/25"},
	}
	got := p.Prepare(raws)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Person != "OBrien, Pat" {
		t.Fatalf("person %q", got[0].Person)
	}
	if got[0].Rotation != "Night Float" {
		t.Fatalf("rotation %q", got[0].Rotation)
	}
	if !got[0].Date.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date %v", got[0].Date)
	}
}

func TestPrepareDoesNotMutateInput(t *testing.T) {
	p := newTestPreparer(t)
	raws := []model.RawRecord{
		{Name: " Lee, Sam ", Assignment: " Wards, am ", Date: "2025-03-04"},
	}
	before := make([]model.RawRecord, len(raws))
	copy(before, raws)
	_ = p.Prepare(raws)
	if !reflect.DeepEqual(raws, before) {
		t.Fatalf("input mutated: %+v", raws)
	}
}

func TestPrepareDeterministic(t *testing.T) {
	p := newTestPreparer(t)
	raws := []model.RawRecord{
		{Name: "A", Assignment: "Wards", Date: "2025-03-04"},
		{Name: "B", Assignment: "MICU Day", Date: "2025-03-05"},
	}
	first := p.Prepare(raws)
	second := p.Prepare(raws)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("prepare not deterministic")
	}
}

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2026-02-01", "2/1/26", "2/1/2026", "02/01/2026", "Feb 1, 2026", "1 Feb 2026"} {
		got, ok := ParseDate(in)
		if !ok {
			t.Fatalf("unparsed %q", in)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v", in, got)
		}
	}
	for _, in := range []string{"", "yesterday", "2026-13-01", "13/32/26"} {
		if _, ok := ParseDate(in); ok {
			t.Fatalf("expected failure for %q", in)
		}
	}
}
