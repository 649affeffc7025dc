// Package csvfile reads transaction rows from a local CSV export.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wzkoh/finsight/internal/encoding"
)

// Source reads all rows of one CSV file on every fetch.
type Source struct {
	path string
}

// New returns a source for the CSV file at path.
func New(path string) (*Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("missing CSV path")
	}

	return &Source{path: path}, nil
}

// Fetch reads and decodes the file. Bank exports disagree on column
// counts and quoting, so the reader is deliberately permissive.
func (s *Source) Fetch(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	utf8r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	return rows, nil
}
