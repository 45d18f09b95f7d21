package job

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a single run of one of the data tools
type Job struct {
	ID        string    // Unique job identifier
	Name      string    // Tool name, e.g. "expand-scores"
	Source    string    // Input file or directory
	Target    string    // Output file, "-" for stdout
	CreatedAt time.Time // Job creation timestamp
}

// NewJob creates a new job with a fresh identifier
func NewJob(name, source, target string) Job {
	return Job{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    source,
		Target:    target,
		CreatedAt: time.Now(),
	}
}

// Result represents the outcome of a job
type Result struct {
	JobID       string
	Name        string
	Success     bool
	RowsRead    int64 // Source rows or document files inspected
	RowsWritten int64 // Output rows or statements emitted
	Errors      []ErrorRecord
	Warnings    []string
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// NewResult initializes a result for a job
func NewResult(job Job) *Result {
	return &Result{
		JobID:     job.ID,
		Name:      job.Name,
		StartTime: time.Now(),
		Errors:    make([]ErrorRecord, 0),
		Warnings:  make([]string, 0),
	}
}

// Complete marks the job as complete and calculates duration
func (r *Result) Complete(success bool) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.Success = success && len(r.Errors) == 0
}

// AddError adds an error to the result
func (r *Result) AddError(err ErrorRecord) {
	r.Errors = append(r.Errors, err)
	r.Success = false
}

// AddWarning adds a warning to the result
func (r *Result) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

// HasErrors checks if any errors occurred
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Category returns the category of the first recorded error
func (r *Result) Category() ErrorCategory {
	if len(r.Errors) == 0 {
		return ErrorCategoryNone
	}
	return r.Errors[0].Category
}
