package regulations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"

	"github.com/Korupama/euit-datatools/pkg/config"
	"github.com/Korupama/euit-datatools/pkg/model"
)

var plainIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// quoteIdentifier leaves plain lower-case identifiers bare and quotes the
// rest. Dotted names are quoted part by part.
func quoteIdentifier(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if !plainIdentifier.MatchString(part) {
			parts[i] = pq.QuoteIdentifier(part)
		}
	}
	return strings.Join(parts, ".")
}

// Statement renders the upsert for one record. The name column is the
// conflict key; url and issuance date are overwritten on conflict.
func Statement(cfg *config.RegulationsConfig, rec model.RegulationRecord) string {
	table := quoteIdentifier(cfg.Table)
	nameCol := quoteIdentifier(cfg.NameColumn)
	urlCol := quoteIdentifier(cfg.URLColumn)
	dateCol := quoteIdentifier(cfg.DateColumn)

	date := "NULL"
	if rec.HasIssueDate() {
		date = "'" + rec.IssuedOn + "'"
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ('%s', '%s', %s) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s;",
		table, nameCol, urlCol, dateCol,
		EscapeLiteral(rec.Name), EscapeLiteral(rec.URL), date,
		nameCol,
		urlCol, urlCol,
		dateCol, dateCol,
	)
}
