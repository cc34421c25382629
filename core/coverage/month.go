package coverage

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidMonth reports a malformed month parameter. It is the only
// caller-facing validation failure of this package; row-level data problems
// never surface.
var ErrInvalidMonth = errors.New("invalid month: expected YYYY-MM")

var monthFormat = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string. Anything else, including month
// numbers outside 01-12, yields ErrInvalidMonth.
func ParseMonth(s string) (Month, error) {
	if !monthFormat.MatchString(s) {
		return Month{}, ErrInvalidMonth
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns the first day of the month at midnight UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first day of the following month, making [Start, End) the
// half-open interval covering the month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
