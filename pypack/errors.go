package pypack

import "errors"

// Sentinel errors for blob encoding and artifact verification.
var (
	// ErrInvalidName is returned when a module name is empty or not valid UTF-8.
	ErrInvalidName = errors.New("pypack: invalid module name")

	// ErrDuplicateName is returned when two entries share a module name.
	ErrDuplicateName = errors.New("pypack: duplicate module name")

	// ErrDigestMismatch is returned when artifact content does not match its manifest descriptor.
	ErrDigestMismatch = errors.New("pypack: digest mismatch")

	// ErrUnknownCompression is returned when a compression name or value is not recognized.
	ErrUnknownCompression = errors.New("pypack: unknown compression")
)
