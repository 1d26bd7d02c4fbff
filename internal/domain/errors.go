package domain

import "errors"

// Every build failure wraps one of these so callers can classify it with
// errors.Is. All of them are fatal for the run.
var (
	// ErrSchemaViolation marks an unknown or missing field or an enumeration
	// value outside its closed set.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrTimestamp marks a start value that is not an RFC 3339 timestamp
	// with an explicit offset.
	ErrTimestamp = errors.New("invalid timestamp")

	// ErrIO marks a failure to read a source document or write an artifact.
	ErrIO = errors.New("io failure")
)
