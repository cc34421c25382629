package amion

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/medrota/rotagap/core/model"
)

// Export column indices. The report carries more columns than we use;
// positions are fixed by the report type requested in ReportURL.
const (
	colName       = 0
	colAssignment = 3
	colDate       = 6
	colStart      = 7
	colStop       = 8
	colRole       = 9
	colType       = 15
	colAssgn      = 16
	minColumns    = 17
)

// preambleLines is the number of banner lines preceding the data rows.
const preambleLines = 7

var assignmentSpaces = regexp.MustCompile(`\s+`)

// ParseExport reads a tab-separated schedule export and returns its usable
// rows. Rows are dropped when they are too short, when the role column is
// blank or "Services", or when the role carries a trailing "*" marker.
// Person names lose their quote characters and assignment labels have
// whitespace runs collapsed; the full normalization happens later in the
// preparer.
func ParseExport(r io.Reader) ([]model.RawRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []model.RawRecord
	line := 0
	for scanner.Scan() {
		line++
		if line <= preambleLines {
			continue
		}
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < minColumns {
			continue
		}
		role := strings.TrimSpace(fields[colRole])
		if role == "" || role == "Services" || strings.HasSuffix(role, "*") {
			continue
		}
		name := strings.TrimSpace(strings.NewReplacer("'", "", `"`, "").Replace(fields[colName]))
		assignment := assignmentSpaces.ReplaceAllString(strings.TrimSpace(fields[colAssignment]), " ")
		rows = append(rows, model.RawRecord{
			Name:       name,
			Assignment: assignment,
			Date:       strings.TrimSpace(fields[colDate]),
			Start:      strings.TrimSpace(fields[colStart]),
			Stop:       strings.TrimSpace(fields[colStop]),
			Role:       role,
			Type:       strings.TrimSpace(fields[colType]),
			Assgn:      strings.TrimSpace(fields[colAssgn]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
