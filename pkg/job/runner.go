package job

import (
	"context"
	"encoding/csv"
	"errors"

	"go.uber.org/zap"
)

// Func is the body of a job. It fills in the row counters of the result.
type Func func(ctx context.Context, result *Result) error

// Run executes fn as the given job, logging its start and outcome.
// The returned error is the one produced by fn.
func Run(ctx context.Context, logger *zap.Logger, job Job, fn Func) (*Result, error) {
	logger = logger.With(zap.String("job_id", job.ID), zap.String("job", job.Name))
	result := NewResult(job)

	logger.Info("Started job",
		zap.String("source", job.Source),
		zap.String("target", job.Target))

	err := fn(ctx, result)
	if err != nil {
		record := NewErrorRecord(err).WithPath(job.Source)
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			record = record.WithLine(parseErr.Line)
		}
		result.AddError(record)
	}
	result.Complete(err == nil)

	for _, warning := range result.Warnings {
		logger.Warn("Job warning", zap.String("warning", warning))
	}

	if result.HasErrors() {
		record := result.Errors[0]
		if err == nil {
			err = record.Error
		}
		logger.Error("Job failed",
			zap.String("category", result.Category().String()),
			zap.String("detail", record.String()),
			zap.Duration("duration", result.Duration),
			zap.Error(err))
		return result, err
	}

	logger.Info("Completed job",
		zap.Int64("rowsRead", result.RowsRead),
		zap.Int64("rowsWritten", result.RowsWritten),
		zap.Duration("duration", result.Duration))

	return result, nil
}
