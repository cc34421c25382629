package roster

import "testing"

func TestExcluderMatchesSubstrings(t *testing.T) {
	ex := NewDefaultExcluder()
	excluded := []string{
		"Conf Morning Report",
		"noon conference",
		"Cards CLINIC pm",
		"Vacation",
		"Pre-Interview Dinner",
		"ABIM Review",
	}
	for _, s := range excluded {
		if !ex.Excluded(s) {
			t.Fatalf("expected %q to be excluded", s)
		}
	}
	kept := []string{
		"Cards Consult",
		"MICU Day",
		"Nephrology*",
	}
	for _, s := range kept {
		if ex.Excluded(s) {
			t.Fatalf("expected %q to be kept", s)
		}
	}
}

func TestNewExcluderCustomTerms(t *testing.T) {
	ex, err := NewExcluder([]string{"Retreat", "C++ Workshop"})
	if err != nil {
		t.Fatalf("new excluder: %v", err)
	}
	if !ex.Excluded("spring retreat day") {
		t.Fatalf("custom term not matched")
	}
	if !ex.Excluded("Intro C++ Workshop") {
		t.Fatalf("metacharacters not quoted")
	}
	if ex.Excluded("Cards Consult") {
		t.Fatalf("unexpected match")
	}
}

func TestNewExcluderEmptyTerms(t *testing.T) {
	if _, err := NewExcluder(nil); err == nil {
		t.Fatalf("expected error for empty term list")
	}
}
