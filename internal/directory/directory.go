// Package directory implements the in-memory contact directory: an
// insertion-ordered sequence of contacts with add, remove, bulk import,
// linear search, and binary search over a name-sorted snapshot.
//
// A Directory is not safe for concurrent use; callers sharing one must
// serialize access.
package directory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/directory/pkg/types"
)

// Directory holds contacts in insertion order. Duplicates are permitted.
type Directory struct {
	entries []types.Contact
	log     *slog.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger sets the logger used for import diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Directory) {
		if l != nil {
			d.log = l
		}
	}
}

// New returns an empty Directory. The zero value is also an empty,
// usable Directory that discards logs.
func New(opts ...Option) *Directory {
	d := &Directory{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add appends a contact to the end of the directory.
func (d *Directory) Add(name, phoneNumber, email string) {
	d.entries = append(d.entries, types.NewContact(name, phoneNumber, email))
}

// Remove deletes the first contact whose three fields all equal the given
// values. It reports whether a contact was removed; a miss is a no-op.
func (d *Directory) Remove(name, phoneNumber, email string) bool {
	i := slices.IndexFunc(d.entries, func(c types.Contact) bool {
		return c.Matches(name, phoneNumber, email)
	})
	if i < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	return true
}

// Clear removes every contact.
func (d *Directory) Clear() {
	clear(d.entries)
	d.entries = d.entries[:0]
}

// Len returns the number of contacts.
func (d *Directory) Len() int {
	return len(d.entries)
}

// At returns the contact at position i in insertion order.
func (d *Directory) At(i int) (types.Contact, bool) {
	if i < 0 || i >= len(d.entries) {
		return types.Contact{}, false
	}
	return d.entries[i], true
}

// Entries returns a copy of the contacts in insertion order.
func (d *Directory) Entries() []types.Contact {
	return slices.Clone(d.entries)
}

// Report describes a completed import.
type Report struct {
	ImportID string // UUID v7 identifying this import in logs.
	Source   string // Source.Name() of the imported source.
	Rows     int    // Number of contacts appended.
}

// Import appends every row produced by src, in source order. Rows are
// staged until the source is exhausted, so a failed import leaves the
// directory unchanged. Every failure wraps types.ErrImportFailure.
func (d *Directory) Import(src types.Source) (Report, error) {
	report := Report{ImportID: newImportID(), Source: src.Name()}

	var staged []types.Contact
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			d.logger().Debug("import aborted",
				"import_id", report.ImportID, "source", report.Source, "rows_read", len(staged), "err", err)
			return report, fmt.Errorf("%w: %s: %w", types.ErrImportFailure, report.Source, err)
		}
		staged = append(staged, row.Contact())
	}

	d.entries = append(d.entries, staged...)
	report.Rows = len(staged)
	d.logger().Debug("import complete",
		"import_id", report.ImportID, "source", report.Source, "rows", report.Rows, "size", len(d.entries))
	return report, nil
}

// LinearSearch scans contacts in insertion order and returns the first one
// whose name equals name exactly.
func (d *Directory) LinearSearch(name string) (types.Contact, bool) {
	for _, c := range d.entries {
		if c.Name == name {
			return c, true
		}
	}
	return types.Contact{}, false
}

// Sorted returns a snapshot of the contacts stably sorted by name using
// byte-wise string order. The stored insertion order is not changed.
func (d *Directory) Sorted() []types.Contact {
	snapshot := slices.Clone(d.entries)
	slices.SortStableFunc(snapshot, func(a, b types.Contact) int {
		return strings.Compare(a.Name, b.Name)
	})
	return snapshot
}

// BinarySearch looks up name in a freshly sorted snapshot of the
// directory. When several contacts share the name, any one of them may be
// returned.
func (d *Directory) BinarySearch(name string) (types.Contact, bool) {
	sorted := d.Sorted()

	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		switch cmp := strings.Compare(name, sorted[mid].Name); {
		case cmp == 0:
			return sorted[mid], true
		case cmp < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return types.Contact{}, false
}

func (d *Directory) logger() *slog.Logger {
	if d.log == nil {
		return discardLogger
	}
	return d.log
}

var discardLogger = slog.New(slog.DiscardHandler)

// newImportID generates a UUID v7 for an import report.
func newImportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
