package model

import "time"

// RawRecord is one row of a schedule export before cleaning. Only the
// person, assignment and date fields matter to the pipeline; the remaining
// columns are carried for callers that want them.
type RawRecord struct {
	Name         string `json:"name"`
	Assignment   string `json:"assignment"`
	Date         string `json:"date"`
	Start        string `json:"start,omitempty"`
	Stop         string `json:"stop,omitempty"`
	Role         string `json:"role,omitempty"`
	Type         string `json:"type,omitempty"`
	Assgn        string `json:"assgn,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

// Record is a schedule row that survived preparation: person and rotation
// are normalized and non-empty, the rotation is not excluded, and the date
// parsed to a calendar day.
type Record struct {
	Person   string    `json:"person"`
	Rotation string    `json:"rotation"`
	Date     time.Time `json:"date"`
}
