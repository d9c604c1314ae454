// Package types defines the Contact record, the import Source interface,
// configuration, and standard error types for the contact directory.
package types
