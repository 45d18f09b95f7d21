package expander

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Korupama/euit-datatools/pkg/job"
	"github.com/Korupama/euit-datatools/pkg/model"
)

var (
	// ErrSourceNotFound is returned when the source dataset does not exist
	ErrSourceNotFound = fmt.Errorf("source file %w", job.ErrNotFound)
	// ErrMissingHeader is returned for an empty source without a header row
	ErrMissingHeader = fmt.Errorf("missing header row: %w", job.ErrMalformedInput)
)

// Format describes how a delimited file is laid out
type Format struct {
	Delimiter rune
	UseCRLF   bool
}

// ReadDataset reads a delimited file with a header row.
// The returned format carries the delimiter and the line terminator of the file.
func ReadDataset(path string, delimiter rune) (*model.Dataset, Format, error) {
	format := Format{Delimiter: delimiter}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, format, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, format, fmt.Errorf("failed to open source %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, format, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	format.UseCRLF = headerEndsWithCRLF(data)

	ds, err := parseDataset(bytes.NewReader(data), delimiter)
	if err != nil {
		return nil, format, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ds, format, nil
}

// headerEndsWithCRLF reports whether the first line of data is terminated by CRLF
func headerEndsWithCRLF(data []byte) bool {
	i := bytes.IndexByte(data, '\n')
	return i > 0 && data[i-1] == '\r'
}

func parseDataset(r io.Reader, delimiter rune) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}
	if len(header) == 1 && strings.TrimSpace(header[0]) == "" {
		return nil, ErrMissingHeader
	}

	ds := &model.Dataset{Header: header}
	if missing := ds.MissingColumns(model.RequiredColumns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", job.ErrMalformedInput, strings.Join(missing, ", "))
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, model.Row(record))
	}

	return ds, nil
}

// WriteDataset writes the header and rows to path, replacing any existing file.
// Every failure wraps job.ErrOutput.
func WriteDataset(path string, ds *model.Dataset, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", job.ErrOutput, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w %s: close: %w", job.ErrOutput, path, cerr)
		}
	}()

	if err := writeDataset(f, ds, format); err != nil {
		return fmt.Errorf("%w %s: %w", job.ErrOutput, path, err)
	}
	return nil
}

func writeDataset(w io.Writer, ds *model.Dataset, format Format) error {
	writer := csv.NewWriter(w)
	writer.Comma = format.Delimiter
	writer.UseCRLF = format.UseCRLF

	if err := writer.Write(ds.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
