package pyembed

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
)

// Registry resolves dotted module names to embedded source and code.
//
// A Registry is built once from a source blob and a code blob and is
// immutable afterwards; query methods are safe for concurrent use without
// synchronization and never perform I/O.
type Registry struct {
	source       *ModuleMap
	code         *ModuleMap
	packages     map[string]struct{}
	names        []string // sorted union of source and code names
	sourceDigest digest.Digest
	codeDigest   digest.Digest
	logger       *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// Build constructs a Registry from a source modules blob and a code modules
// blob.
//
// Both blobs are retained: module data returned by the registry aliases
// them directly. Callers must not modify either blob after calling Build.
// Either blob may hold zero entries (a four-byte zero count); a registry
// with no modules is legal.
//
// The blobs are verified and parsed concurrently. If either blob fails an
// expected-digest check or fails to parse, Build returns an error naming
// the blob and no registry is produced.
func Build(sourceBlob, codeBlob []byte, opts ...Option) (*Registry, error) {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}

	var g errgroup.Group
	g.Go(func() error {
		m, err := parseVerified(sourceBlob, r.sourceDigest)
		if err != nil {
			return fmt.Errorf("source blob: %w", err)
		}
		r.source = m
		return nil
	})
	g.Go(func() error {
		m, err := parseVerified(codeBlob, r.codeDigest)
		if err != nil {
			return fmt.Errorf("code blob: %w", err)
		}
		r.code = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.packages = DerivePackages(r.source.Names(), r.code.Names())
	r.names = unionNames(r.source, r.code)

	r.log().Debug("module registry built",
		"source_modules", r.source.Len(),
		"code_modules", r.code.Len(),
		"packages", len(r.packages),
	)
	return r, nil
}

// parseVerified checks blob content against an expected digest, then parses it.
// An empty expected digest disables the check.
func parseVerified(blob []byte, expected digest.Digest) (*ModuleMap, error) {
	if expected != "" {
		if err := expected.Validate(); err != nil {
			return nil, fmt.Errorf("invalid expected digest: %w", err)
		}
		if actual := expected.Algorithm().FromBytes(blob); actual != expected {
			return nil, fmt.Errorf("%w: expected %s, got %s", ErrDigestMismatch, expected, actual)
		}
	}
	return ParseModulesBlob(blob)
}

// unionNames returns the sorted union of both mappings' names.
func unionNames(source, code *ModuleMap) []string {
	names := make([]string, 0, source.Len()+code.Len())
	for name := range source.Names() {
		names = append(names, name)
	}
	for name := range code.Names() {
		if !source.Has(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// GetSource returns the source text for the named module.
//
// The returned slice aliases the source blob and must be treated as
// immutable. Returns ErrNotFound when the module has no source entry.
func (r *Registry) GetSource(name string) ([]byte, error) {
	data, ok := r.source.Get(name)
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// GetCode returns the compiled code for the named module.
//
// The returned slice aliases the code blob and must be treated as
// immutable. Returns ErrNotFound when the module has no code entry.
func (r *Registry) GetCode(name string) ([]byte, error) {
	data, ok := r.code.Get(name)
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// HasModule reports whether the named module has a source or code entry.
func (r *Registry) HasModule(name string) bool {
	return r.source.Has(name) || r.code.Has(name)
}

// IsPackage reports whether the name denotes a package.
//
// A name is a package when some registered module name extends it with a
// dotted suffix. Package membership is derived from names alone at build
// time; a package need not itself be a registered module.
func (r *Registry) IsPackage(name string) bool {
	_, ok := r.packages[name]
	return ok
}

// Names returns an iterator over all module names, sorted, without
// duplicates. Names present in both mappings appear once.
func (r *Registry) Names() iter.Seq[string] {
	return slices.Values(r.names)
}

// Len returns the number of distinct module names.
func (r *Registry) Len() int {
	return len(r.names)
}
