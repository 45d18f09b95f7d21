package regulations

import (
	"regexp"
	"strings"

	"github.com/Korupama/euit-datatools/pkg/model"
)

// Year, month and day separated by '-' or '_', e.g. 2024-12-25 or 2024_12_25
var datePattern = regexp.MustCompile(`(\d{4})[_-](\d{2})[_-](\d{2})`)

// DeriveRecord builds the van_ban row for a document file name
func DeriveRecord(fileName, extension string) model.RegulationRecord {
	return model.RegulationRecord{
		Name:     strings.TrimSuffix(fileName, extension),
		URL:      fileName,
		IssuedOn: ExtractDate(fileName),
		FileName: fileName,
	}
}

// ExtractDate returns the first YYYY-MM-DD date found in name, or "".
// Components are not range checked.
func ExtractDate(name string) string {
	m := datePattern.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// EscapeLiteral doubles single quotes for use inside a SQL string literal
func EscapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
