package pyembed

import (
	"log/slog"

	"github.com/opencontainers/go-digest"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used during registry construction.
// By default, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithSourceDigest sets the expected digest of the source blob.
//
// When set, Build verifies the source blob bytes against the digest before
// parsing and fails with ErrDigestMismatch on a mismatch.
func WithSourceDigest(d digest.Digest) Option {
	return func(r *Registry) {
		r.sourceDigest = d
	}
}

// WithCodeDigest sets the expected digest of the code blob.
//
// When set, Build verifies the code blob bytes against the digest before
// parsing and fails with ErrDigestMismatch on a mismatch.
func WithCodeDigest(d digest.Digest) Option {
	return func(r *Registry) {
		r.codeDigest = d
	}
}
