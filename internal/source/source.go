// Package source provides the import sources that feed a contact
// directory: comma-separated text, JSON lines, and SQLite databases.
// Every source yields types.Row values in file order and reports io.EOF
// when exhausted.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// DefaultTable is the table read from SQLite files opened through Open.
const DefaultTable = "contacts"

// Open returns a Source for path, chosen by file extension. The caller
// must Close the returned source.
func Open(path string) (types.Source, error) {
	var (
		src types.Source
		err error
	)
	// Each case checks err itself so a failed open returns a nil
	// interface, not a nil pointer wrapped in one.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		var s *CSV
		if s, err = OpenCSV(path); err == nil {
			src = s
		}
	case ".jsonl", ".ndjson":
		var s *JSONL
		if s, err = OpenJSONL(path); err == nil {
			src = s
		}
	case ".db", ".sqlite", ".sqlite3":
		var s *SQLite
		if s, err = OpenSQLite(path, DefaultTable); err == nil {
			src = s
		}
	default:
		err = fmt.Errorf("%w: %s", types.ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// byteOrderMark is the UTF-8 encoding of U+FEFF that spreadsheet exports
// often place at the start of a file.
const byteOrderMark = "\ufeff"
