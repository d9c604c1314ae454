package source

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// tableNamePattern restricts table names to plain identifiers, since the
// name is interpolated into the query.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite reads contacts from a table with name, phone_number and email
// columns, in rowid order.
type SQLite struct {
	name string
	db   *sql.DB
	rows *sql.Rows
}

var _ types.Source = (*SQLite)(nil)

// OpenSQLite opens the database at path read-only and queries table. A
// missing file is an error rather than a freshly created empty database.
func OpenSQLite(path, table string) (*SQLite, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT name, phone_number, email FROM %s ORDER BY rowid", table))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("querying %s in %s: %w", table, path, err)
	}

	return &SQLite{name: path, db: db, rows: rows}, nil
}

// Next returns the next row. NULL columns are malformed rows.
func (s *SQLite) Next() (types.Row, error) {
	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			return types.Row{}, fmt.Errorf("reading %s: %w", s.name, err)
		}
		return types.Row{}, io.EOF
	}

	var name, phone, email sql.NullString
	if err := s.rows.Scan(&name, &phone, &email); err != nil {
		return types.Row{}, fmt.Errorf("scanning %s: %w", s.name, err)
	}
	if !name.Valid || !phone.Valid || !email.Valid {
		return types.Row{}, fmt.Errorf("%s: NULL field: %w", s.name, types.ErrMalformedRow)
	}
	return types.Row{name.String, phone.String, email.String}, nil
}

// Name returns the database path.
func (s *SQLite) Name() string { return s.name }

// Close releases the result set and the database handle.
func (s *SQLite) Close() error {
	rowsErr := s.rows.Close()
	if err := s.db.Close(); err != nil {
		return err
	}
	return rowsErr
}
