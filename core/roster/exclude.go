package roster

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultBannedTerms lists the assignment labels that mark administrative
// or non-clinical calendar entries: conferences, didactics, leave, class
// codes and other blocks no one needs coverage for.
func DefaultBannedTerms() []string {
	return []string{
		"Conf", "Didactic", "Exam", "Panel", "Retreat", "R1", "R2", "R3",
		"SOM Resc", "Resc", "ABIM", "Board Prep",
		"Chief", "Clinic", "Holiday", "Off", "Immersion", "Academic",
		"Vacation", "Sick", "Interview", "PPC", "Shadow", "TBD", "Jury",
		"ACGME",
	}
}

// Excluder classifies rotation labels as non-rotation entries. The term
// alternation is compiled once at construction and the matcher is read-only
// afterwards, so a single Excluder can serve concurrent callers.
type Excluder struct {
	re *regexp.Regexp
}

// NewExcluder compiles a case-insensitive substring matcher over the given
// banned terms. An empty term list is rejected: an excluder that bans
// nothing is almost certainly a configuration mistake.
func NewExcluder(terms []string) (*Excluder, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("no banned terms configured")
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile banned terms: %w", err)
	}
	return &Excluder{re: re}, nil
}

// NewDefaultExcluder builds an Excluder over DefaultBannedTerms.
func NewDefaultExcluder() *Excluder {
	ex, err := NewExcluder(DefaultBannedTerms())
	if err != nil {
		panic(err)
	}
	return ex
}

// Excluded reports whether any banned term occurs inside the normalized
// rotation label.
func (e *Excluder) Excluded(rotation string) bool {
	return e.re.MatchString(rotation)
}
