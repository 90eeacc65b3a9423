package pypack

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
)

// ManifestVersion is the current manifest schema version.
const ManifestVersion = 1

// DefaultManifestName is the file name pack runs write manifests under.
const DefaultManifestName = "pymodules.manifest.json"

// BlobDescriptor records one emitted blob artifact.
//
// Digest, Size, and Modules describe the uncompressed blob bytes (what the
// registry parses), regardless of how the artifact is stored on disk.
type BlobDescriptor struct {
	Path    string        `json:"path"`
	Digest  digest.Digest `json:"digest"`
	Size    int64         `json:"size"`
	Modules int           `json:"modules"`
}

// NewBlobDescriptor computes the descriptor for a blob stored at path.
func NewBlobDescriptor(path string, blob []byte, modules int) BlobDescriptor {
	return BlobDescriptor{
		Path:    path,
		Digest:  digest.FromBytes(blob),
		Size:    int64(len(blob)),
		Modules: modules,
	}
}

// Verify checks blob content against the descriptor.
func (d BlobDescriptor) Verify(blob []byte) error {
	if err := d.Digest.Validate(); err != nil {
		return fmt.Errorf("pypack: %s: invalid digest: %w", d.Path, err)
	}
	if int64(len(blob)) != d.Size {
		return fmt.Errorf("%w: %s: size: expected %d, got %d", ErrDigestMismatch, d.Path, d.Size, len(blob))
	}
	if actual := d.Digest.Algorithm().FromBytes(blob); actual != d.Digest {
		return fmt.Errorf("%w: %s: expected %s, got %s", ErrDigestMismatch, d.Path, d.Digest, actual)
	}
	return nil
}

// Manifest records the artifacts emitted by a pack run.
type Manifest struct {
	Version int            `json:"version"`
	Source  BlobDescriptor `json:"source"`
	Code    BlobDescriptor `json:"code"`
}

// WriteManifestFile writes the manifest to path as indented JSON.
func WriteManifestFile(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("pypack: encode manifest: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// LoadManifestFile reads a manifest written by WriteManifestFile.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("pypack: parse manifest %s: %w", path, err)
	}
	return &m, nil
}
