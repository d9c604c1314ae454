package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// CSV reads comma-separated rows with no header. Each record must hold
// exactly three fields: name, phone number, email. A leading byte order
// mark is dropped.
type CSV struct {
	name   string
	r      *csv.Reader
	read   int
	closer io.Closer
}

var _ types.Source = (*CSV)(nil)

// NewCSV returns a CSV source reading from r. name identifies the source
// in errors.
func NewCSV(r io.Reader, name string) *CSV {
	cr := csv.NewReader(r)
	// Field counts are checked in Next so the error carries ErrMalformedRow.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &CSV{name: name, r: cr}
}

// OpenCSV opens the file at path as a CSV source.
func OpenCSV(path string) (*CSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s := NewCSV(f, path)
	s.closer = f
	return s, nil
}

// Next returns the next record.
func (s *CSV) Next() (types.Row, error) {
	record, err := s.r.Read()
	if errors.Is(err, io.EOF) {
		return types.Row{}, io.EOF
	}
	if err != nil {
		return types.Row{}, fmt.Errorf("reading %s: %w", s.name, err)
	}
	if len(record) != 3 {
		line, _ := s.r.FieldPos(0)
		return types.Row{}, fmt.Errorf("%s line %d: got %d fields: %w", s.name, line, len(record), types.ErrMalformedRow)
	}
	if s.read == 0 {
		record[0] = strings.TrimPrefix(record[0], byteOrderMark)
	}
	s.read++

	var row types.Row
	for i, field := range record {
		row[i] = strings.TrimSpace(field)
	}
	return row, nil
}

// Name returns the source name given at construction.
func (s *CSV) Name() string { return s.name }

// Close closes the underlying file, if the source opened one.
func (s *CSV) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
