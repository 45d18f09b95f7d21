// Package regulations generates the SQL that loads the regulation documents
// served by the backend into the van_ban table.
package regulations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Korupama/euit-datatools/pkg/config"
	"github.com/Korupama/euit-datatools/pkg/job"
)

// HeaderLine is the first comment line of a generated script
const HeaderLine = "-- Auto-generated SQL script to load regulations from StaticContent/documents"

// Generator turns the document files of a directory into upsert statements
type Generator struct {
	cfg    *config.RegulationsConfig
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock overrides the clock used for the script timestamp
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator
func NewGenerator(cfg *config.RegulationsConfig, logger *zap.Logger, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, errors.New("regulations configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: logger.Named("regulations"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns one upsert statement per document in dir, in file name order.
// Documents without an issuance date are reported as warnings on result.
// It fails with ErrDocumentsDirNotFound or ErrNoDocuments when there is nothing to load.
func (g *Generator) Generate(ctx context.Context, dir string, result *job.Result) ([]string, error) {
	files, err := ListDocuments(dir, g.cfg.Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, dir)
	}

	statements := make([]string, 0, len(files))
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec := DeriveRecord(name, g.cfg.Extension)
		if !rec.HasIssueDate() {
			result.AddWarning("no issuance date in " + rec.FileName)
		}
		statements = append(statements, Statement(g.cfg, rec))
	}

	g.logger.Info("Generated regulation statements",
		zap.String("dir", dir),
		zap.Int("documents", len(files)))

	return statements, nil
}

// WriteScript writes the header comment block followed by the statements, one per line
func (g *Generator) WriteScript(w io.Writer, statements []string) error {
	if _, err := fmt.Fprintf(w, "%s\n-- Generated on: %s\n\n", HeaderLine, isoTimestamp(g.now())); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, stmt := range statements {
		if _, err := fmt.Fprintln(w, stmt); err != nil {
			return fmt.Errorf("failed to write statement: %w", err)
		}
	}
	return nil
}

// isoTimestamp formats local time as YYYY-MM-DDTHH:MM:SS[.ffffff],
// dropping the fraction when it is zero
func isoTimestamp(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}
