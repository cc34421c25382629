package amion

import "time"

// AcademicYear is a named date range of the residency calendar.
type AcademicYear struct {
	Name  string
	Start time.Time
	End   time.Time
}

// academicYears maps the supported year codes to their exact schedule
// boundaries. The boundaries are not simple July-to-June splits; they track
// the actual switch days of the published schedules.
var academicYears = map[string]AcademicYear{
	"AY22": {Name: "AY22", Start: date(2022, 6, 24), End: date(2023, 6, 27)},
	"AY23": {Name: "AY23", Start: date(2023, 6, 28), End: date(2024, 6, 30)},
	"AY24": {Name: "AY24", Start: date(2024, 7, 1), End: date(2025, 6, 29)},
	"AY25": {Name: "AY25", Start: date(2025, 6, 30), End: date(2026, 6, 29)},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LookupYear resolves an academic year code. Unknown codes return a
// degenerate one-day range so a fetch yields no rows instead of failing.
func LookupYear(name string) AcademicYear {
	if ay, ok := academicYears[name]; ok {
		return ay
	}
	return AcademicYear{Name: name, Start: date(1, 1, 1), End: date(1, 1, 2)}
}

// KnownYears lists the supported academic year codes in calendar order.
func KnownYears() []string {
	return []string{"AY22", "AY23", "AY24", "AY25"}
}
