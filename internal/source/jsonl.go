package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// jsonlRecord is the on-disk shape of one JSONL line. Unknown fields are
// ignored.
type jsonlRecord struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

// JSONL reads one JSON object per line. Blank lines are skipped; a line
// that is not valid JSON or lacks one of the three fields is an error.
type JSONL struct {
	name    string
	scanner *bufio.Scanner
	line    int
	closer  io.Closer
}

var _ types.Source = (*JSONL)(nil)

// NewJSONL returns a JSONL source reading from r.
func NewJSONL(r io.Reader, name string) *JSONL {
	return &JSONL{name: name, scanner: bufio.NewScanner(r)}
}

// OpenJSONL opens the file at path as a JSONL source.
func OpenJSONL(path string) (*JSONL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s := NewJSONL(f, path)
	s.closer = f
	return s, nil
}

// Next returns the row decoded from the next non-blank line.
func (s *JSONL) Next() (types.Row, error) {
	for s.scanner.Scan() {
		s.line++
		line := s.scanner.Bytes()
		if s.line == 1 {
			line = bytes.TrimPrefix(line, []byte(byteOrderMark))
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var rec jsonlRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return types.Row{}, fmt.Errorf("%s line %d: %w", s.name, s.line, err)
		}
		if rec.Name == nil || rec.PhoneNumber == nil || rec.Email == nil {
			return types.Row{}, fmt.Errorf("%s line %d: %w", s.name, s.line, types.ErrMalformedRow)
		}
		return types.Row{*rec.Name, *rec.PhoneNumber, *rec.Email}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return types.Row{}, fmt.Errorf("scanning %s: %w", s.name, err)
	}
	return types.Row{}, io.EOF
}

// Name returns the source name given at construction.
func (s *JSONL) Name() string { return s.name }

// Close closes the underlying file, if the source opened one.
func (s *JSONL) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
