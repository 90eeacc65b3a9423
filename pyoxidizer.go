// Package pyoxidizer embeds Python modules in binaries and resolves dotted
// module names to their source and compiled code at run time.
//
// The repository splits into two halves:
//   - pyembed: the run-time side. It parses modules blobs and serves
//     GetSource, GetCode, HasModule, and IsPackage queries from memory.
//   - pypack: the build-time side. It collects module files from source
//     trees, encodes modules blobs, and writes artifacts with a digest
//     manifest.
//
// This package re-exports the pyembed consumer surface so embedding hosts
// need a single import.
//
// # Quick Start
//
// Pack a source tree at build time:
//
//	pyoxidizer pack --out build ./lib
//
// Embed the artifacts and query them at run time:
//
//	//go:embed build/py_modules.bin
//	var sourceBlob []byte
//
//	//go:embed build/pyc_modules.bin
//	var codeBlob []byte
//
//	reg, err := pyoxidizer.Build(sourceBlob, codeBlob)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src, err := reg.GetSource("app.models.user")
//
// # Integrity
//
// Pack runs record the digest of every artifact in a manifest. Hosts that
// want startup verification pass the recorded digests to Build:
//
//	reg, err := pyoxidizer.Build(sourceBlob, codeBlob,
//	    pyoxidizer.WithSourceDigest(sourceDigest),
//	    pyoxidizer.WithCodeDigest(codeDigest),
//	)
package pyoxidizer

import "github.com/cuulee/PyOxidizer/pyembed"

// Re-export types from pyembed for the public API.
type (
	// Registry resolves dotted module names to embedded source and code.
	Registry = pyembed.Registry

	// ModuleMap holds the modules decoded from a single blob.
	ModuleMap = pyembed.ModuleMap

	// Option configures a Registry.
	Option = pyembed.Option
)

// Build constructs a Registry from a source modules blob and a code modules blob.
var Build = pyembed.Build

// ParseModulesBlob decodes a modules blob into a ModuleMap.
var ParseModulesBlob = pyembed.ParseModulesBlob

// DerivePackages computes the set of package names implied by module names.
var DerivePackages = pyembed.DerivePackages

// Registry construction options.
var (
	// WithLogger sets the logger used during registry construction.
	WithLogger = pyembed.WithLogger

	// WithSourceDigest sets the expected digest of the source blob.
	WithSourceDigest = pyembed.WithSourceDigest

	// WithCodeDigest sets the expected digest of the code blob.
	WithCodeDigest = pyembed.WithCodeDigest
)

// Sentinel errors re-exported from pyembed.
var (
	// ErrTooSmall is returned when a blob cannot hold the entry-count header.
	ErrTooSmall = pyembed.ErrTooSmall

	// ErrMalformed is returned when a blob's sections are inconsistent with its length.
	ErrMalformed = pyembed.ErrMalformed

	// ErrNotFound is returned when a module has no entry in the queried mapping.
	ErrNotFound = pyembed.ErrNotFound

	// ErrDigestMismatch is returned when blob content does not match its expected digest.
	ErrDigestMismatch = pyembed.ErrDigestMismatch
)
