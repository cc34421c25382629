package roster

import (
	"regexp"
	"strings"
)

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	ampmSuffix = regexp.MustCompile(`(?i),\s*(am|pm)\s*$`)
	quoteChars = strings.NewReplacer("'", "", `"`, "")
)

// NormalizeRotation canonicalizes a free-text rotation label: surrounding
// whitespace is trimmed, inner whitespace runs collapse to a single space
// and trailing ", am" / ", pm" markers are removed. Suffix stripping runs
// to a fixed point so the function is idempotent even for stacked markers.
func NormalizeRotation(raw string) string {
	s := strings.TrimSpace(raw)
	s = spaceRun.ReplaceAllString(s, " ")
	for {
		t := strings.TrimSpace(ampmSuffix.ReplaceAllString(s, ""))
		if t == s {
			return s
		}
		s = t
	}
}

// NormalizePerson canonicalizes a person name by stripping quote characters
// and surrounding whitespace. Idempotent.
func NormalizePerson(raw string) string {
	return strings.TrimSpace(quoteChars.Replace(raw))
}
