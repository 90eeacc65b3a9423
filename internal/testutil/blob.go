// Package testutil provides helpers for building modules blobs in tests.
package testutil

import (
	"encoding/binary"
	"testing"
)

// BlobEntry holds a name/data pair for building test modules blobs.
type BlobEntry struct {
	Name string
	Data []byte
}

// BuildBlob encodes entries into the modules blob wire layout: a u32 entry
// count, u32 name/data length pairs, the concatenated names, then the
// concatenated data.
//
// Entries are written in the order given and names are not checked, so
// tests can exercise duplicate names, empty names, and decoding order.
func BuildBlob(tb testing.TB, entries []BlobEntry) []byte {
	tb.Helper()

	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(entries)))
	for _, e := range entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Name)))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Data)))
	}
	for _, e := range entries {
		buf = append(buf, e.Name...)
	}
	for _, e := range entries {
		buf = append(buf, e.Data...)
	}
	return buf
}

// BuildRawBlob encodes an arbitrary count header followed by raw index,
// names, and values bytes. Tests use it to produce inconsistent blobs that
// BuildBlob cannot express.
func BuildRawBlob(tb testing.TB, count uint32, rest []byte) []byte {
	tb.Helper()

	buf := binary.LittleEndian.AppendUint32(nil, count)
	return append(buf, rest...)
}
