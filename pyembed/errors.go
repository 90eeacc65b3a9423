package pyembed

import "errors"

// Sentinel errors for blob parsing and registry queries.
var (
	// ErrTooSmall is returned when a blob cannot hold the entry-count header.
	ErrTooSmall = errors.New("pyembed: modules data too small")

	// ErrMalformed is returned when a blob's index, names, or values sections
	// are inconsistent with its length, or a module name is not valid UTF-8.
	// It is always wrapped with a reason.
	ErrMalformed = errors.New("pyembed: malformed modules data")

	// ErrNotFound is returned when a module has no entry in the queried mapping.
	ErrNotFound = errors.New("pyembed: module not available")

	// ErrDigestMismatch is returned when blob content does not match its expected digest.
	ErrDigestMismatch = errors.New("pyembed: digest mismatch")
)
