// Package expander synthesizes study results for additional students from a
// sample dataset.
package expander

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"github.com/Korupama/euit-datatools/pkg/config"
	"github.com/Korupama/euit-datatools/pkg/model"
)

// Expander copies every source row once per new student identifier, resampling scores
type Expander struct {
	cfg     *config.ExpandConfig
	sampler ScoreSampler
	logger  *zap.Logger
}

// New creates an Expander
func New(cfg *config.ExpandConfig, logger *zap.Logger) (*Expander, error) {
	if cfg == nil {
		return nil, errors.New("expand configuration cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sampler := ScoreSampler{
		Min:  cfg.ScoreMin,
		Max:  cfg.ScoreMax,
		Step: cfg.ScoreStep,
	}

	return &Expander{
		cfg:     cfg,
		sampler: sampler,
		logger:  logger.Named("expander"),
	}, nil
}

// Expand reads sourcePath, appends the synthesized rows and writes everything
// to outputPath. It returns the number of data rows written.
func (e *Expander) Expand(ctx context.Context, sourcePath, outputPath string) (int, error) {
	ds, format, err := ReadDataset(sourcePath, e.cfg.Delimiter)
	if err != nil {
		return 0, err
	}

	e.logger.Debug("Read source dataset",
		zap.String("path", sourcePath),
		zap.Int("rows", len(ds.Rows)),
		zap.Strings("columns", ds.Header),
		zap.Bool("crlf", format.UseCRLF))

	// Seeded per run; runs never share generator state
	rng := rand.New(rand.NewSource(e.cfg.Seed))

	expanded, err := ExpandDataset(ctx, ds, e.cfg.IDs.IDs(), e.sampler, rng)
	if err != nil {
		return 0, err
	}

	if err := WriteDataset(outputPath, expanded, format); err != nil {
		return 0, err
	}

	e.logger.Info("Wrote expanded dataset",
		zap.String("path", outputPath),
		zap.Int("sourceRows", len(ds.Rows)),
		zap.Int("newStudents", e.cfg.IDs.Len()),
		zap.Int("rows", len(expanded.Rows)))

	return len(expanded.Rows), nil
}

// ExpandDataset returns a dataset holding the original rows followed by one
// copy of them per identifier, in the order given. In every copy the student
// id is replaced and each non-blank score is resampled; blank scores stay empty.
func ExpandDataset(
	ctx context.Context,
	ds *model.Dataset,
	ids []int,
	sampler ScoreSampler,
	src Source,
) (*model.Dataset, error) {
	idIdx := ds.ColumnIndex(model.ColumnStudentID)
	if idIdx < 0 {
		return nil, errors.New("dataset has no " + model.ColumnStudentID + " column")
	}

	scoreIdx := make([]int, 0, len(model.ScoreColumns))
	for _, col := range model.ScoreColumns {
		if i := ds.ColumnIndex(col); i >= 0 {
			scoreIdx = append(scoreIdx, i)
		}
	}

	out := &model.Dataset{
		Header: ds.Header,
		Rows:   make([]model.Row, 0, len(ds.Rows)*(1+len(ids))),
	}
	out.Rows = append(out.Rows, ds.Rows...)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		studentID := strconv.Itoa(id)
		for n, row := range ds.Rows {
			if len(row) != len(ds.Header) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", n+1, len(row), len(ds.Header))
			}
			newRow := row.Clone()
			newRow[idIdx] = studentID

			for _, i := range scoreIdx {
				if model.IsBlank(row[i]) {
					newRow[i] = ""
					continue
				}
				newRow[i] = sampler.SampleString(src)
			}

			out.Rows = append(out.Rows, newRow)
		}
	}

	return out, nil
}
