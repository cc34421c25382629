package roster

import "testing"

func TestNormalizeRotation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Cards  Consult ", "Cards Consult"},
		{"Night\tFloat", "Night Float"},
		{"Wards, am", "Wards"},
		{"Wards, PM", "Wards"},
		{"Wards,pm", "Wards"},
		{"Wards, am ", "Wards"},
		{"MICU Day", "MICU Day"},
		{"amped", "amped"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeRotation(c.in); got != c.want {
			t.Fatalf("NormalizeRotation(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRotationIdempotent(t *testing.T) {
	inputs := []string{
		"  Cards  Consult, am ",
		"Wards, am, pm",
		"x , pm",
		"Nephro*",
		"",
	}
	for _, in := range inputs {
		once := NormalizeRotation(in)
		twice := NormalizeRotation(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizePerson(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" O'Brien, Pat ", "OBrien, Pat"},
		{`"Smith, Alex"`, "Smith, Alex"},
		{"  Lee, Sam", "Lee, Sam"},
		{"''", ""},
	}
	for _, c := range cases {
		if got := NormalizePerson(c.in); got != c.want {
			t.Fatalf("NormalizePerson(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	for _, in := range []string{" O'Brien ", `a"b`} {
		if NormalizePerson(NormalizePerson(in)) != NormalizePerson(in) {
			t.Fatalf("not idempotent for %q", in)
		}
	}
}
