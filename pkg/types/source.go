package types

import "errors"

// Row is a single (name, phone number, email) triple produced by a Source.
type Row [3]string

// Contact converts the row to a Contact.
func (r Row) Contact() Contact {
	return NewContact(r[0], r[1], r[2])
}

// Source yields contact rows in the order they appear in the underlying
// file. Next returns io.EOF once every row has been produced.
type Source interface {
	// Next returns the next row. Any error other than io.EOF means the
	// source could not be read or the row was malformed.
	Next() (Row, error)

	// Name identifies the source in logs and error messages.
	Name() string

	// Close releases the file or database handle held by the source.
	Close() error
}

// Import errors.
var (
	ErrImportFailure = errors.New("import failed")
	ErrMalformedRow  = errors.New("row must contain exactly three fields")
	ErrUnknownFormat = errors.New("unknown import file format")
)
