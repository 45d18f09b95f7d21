package regulations

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/Korupama/euit-datatools/pkg/job"
)

var (
	// ErrDocumentsDirNotFound is returned when the documents directory does not exist
	ErrDocumentsDirNotFound = fmt.Errorf("documents directory %w", job.ErrNotFound)
	// ErrNoDocuments is returned when the directory holds no matching document
	ErrNoDocuments = fmt.Errorf("no documents found: %w", job.ErrEmptyResult)
)

// ListDocuments returns the names of the document files in dir, sorted
// byte-wise. Hidden files, directories and names without the extension are
// skipped.
func ListDocuments(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentsDirNotFound, dir)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsDocument(name, extension) {
			continue
		}
		names = append(names, name)
	}

	// ReadDir sorts by file name already; the output order depends on it
	sort.Strings(names)
	return names, nil
}

// IsDocument reports whether name is a visible file with the given extension
func IsDocument(name, extension string) bool {
	return strings.HasSuffix(name, extension) && !strings.HasPrefix(name, ".")
}
