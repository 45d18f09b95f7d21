// pkg/model/dataset.go
package model

import "strings"

// Columns of the study result dataset
const (
	ColumnStudentID  = "mssv"
	ColumnCoursework = "diem_qua_trinh"
	ColumnMidterm    = "diem_giua_ki"
	ColumnPractice   = "diem_thuc_hanh"
	ColumnFinal      = "diem_cuoi_ki"
)

// ScoreColumns lists the score columns resampled for synthesized students
var ScoreColumns = []string{ColumnCoursework, ColumnMidterm, ColumnPractice, ColumnFinal}

// RequiredColumns lists the columns a study result dataset must carry
var RequiredColumns = append([]string{ColumnStudentID}, ScoreColumns...)

// Dataset is a delimited table with a header row
type Dataset struct {
	Header []string // Column names in source order
	Rows   []Row    // Data rows in source order
}

// Row holds the values of a single record, aligned with Dataset.Header
type Row []string

// ColumnIndex returns the position of a column in the header, or -1
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// MissingColumns returns the names from want that are not in the header
func (d *Dataset) MissingColumns(want []string) []string {
	var missing []string
	for _, name := range want {
		if d.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Clone returns a copy of the row that can be modified independently
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// IsBlank reports whether a field is empty once surrounding whitespace is removed
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
