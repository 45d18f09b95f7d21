package job

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// Sentinel errors wrapped by the tools so failures can be categorized
var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyResult    = errors.New("empty result")
	ErrMalformedInput = errors.New("malformed input")
	ErrOutput         = errors.New("cannot write output")
)

// ErrorCategory defines categories of errors raised by a job
type ErrorCategory int

const (
	ErrorCategoryNone ErrorCategory = iota
	ErrorCategoryNotFound
	ErrorCategoryEmptyResult
	ErrorCategoryMalformedInput
	ErrorCategoryIO
	ErrorCategoryUnknown
)

// String returns a string representation of the error category
func (ec ErrorCategory) String() string {
	switch ec {
	case ErrorCategoryNone:
		return "None"
	case ErrorCategoryNotFound:
		return "NotFound"
	case ErrorCategoryEmptyResult:
		return "EmptyResult"
	case ErrorCategoryMalformedInput:
		return "MalformedInput"
	case ErrorCategoryIO:
		return "IO"
	case ErrorCategoryUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", ec)
	}
}

// ExitCode returns the process exit code for the category
func (ec ErrorCategory) ExitCode() int {
	if ec == ErrorCategoryNone {
		return 0
	}
	return 1
}

// Categorize determines the category of an error
func Categorize(err error) ErrorCategory {
	if err == nil {
		return ErrorCategoryNone
	}

	var parseErr *csv.ParseError
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, ErrOutput):
		return ErrorCategoryIO
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ErrorCategoryNotFound
	case errors.Is(err, ErrEmptyResult):
		return ErrorCategoryEmptyResult
	case errors.Is(err, ErrMalformedInput), errors.As(err, &parseErr):
		return ErrorCategoryMalformedInput
	case errors.As(err, &pathErr):
		return ErrorCategoryIO
	default:
		return ErrorCategoryUnknown
	}
}

// ErrorRecord represents a single error raised by a job
type ErrorRecord struct {
	Category  ErrorCategory
	Path      string
	Line      int
	Error     error
	Message   string // Derived from Error but stored for serialization
	Timestamp time.Time
}

// NewErrorRecord creates a categorized error record with current timestamp
func NewErrorRecord(err error) ErrorRecord {
	record := ErrorRecord{
		Category:  Categorize(err),
		Error:     err,
		Timestamp: time.Now(),
	}

	if err != nil {
		record.Message = err.Error()
	}

	return record
}

// WithPath adds file information to the error record
func (r ErrorRecord) WithPath(path string) ErrorRecord {
	r.Path = path
	return r
}

// WithLine adds line information to the error record
func (r ErrorRecord) WithLine(line int) ErrorRecord {
	r.Line = line
	return r
}

// String returns a formatted error message
func (r ErrorRecord) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] ", r.Category))

	if r.Path != "" {
		sb.WriteString(fmt.Sprintf("Path: %s ", r.Path))
	}

	if r.Line > 0 {
		sb.WriteString(fmt.Sprintf("Line: %d ", r.Line))
	}

	if r.Error != nil {
		sb.WriteString(fmt.Sprintf("Error: %s", r.Error.Error()))
	} else if r.Message != "" {
		sb.WriteString(fmt.Sprintf("Error: %s", r.Message))
	}

	return strings.TrimSpace(sb.String())
}
