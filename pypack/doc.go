// Package pypack produces the binary representation of Python modules
// consumed by pyembed.
//
// A pack run collects module files from a source tree, encodes them into
// modules blobs, and writes the blobs to disk together with a JSON manifest
// describing each artifact:
//
//	entries, err := pypack.CollectModules(ctx, os.DirFS("lib"))
//	if err != nil {
//	    return err
//	}
//	blob, err := pypack.Encode(entries)
//
// Blob files may be stored zstd-compressed. Compression is a storage detail:
// ReadBlobFile transparently returns the original blob bytes, and manifest
// digests always describe the uncompressed blob.
package pypack
