package pypack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

const (
	// headerSize is the length of the entry-count header in bytes.
	headerSize = 4

	// indexRecordSize is the length of one index record in bytes.
	indexRecordSize = 8
)

// Entry is a named module payload to be encoded into a blob.
type Entry struct {
	Name string
	Data []byte
}

// Write encodes entries into the modules blob format: a little-endian u32
// entry count, u32 name/data length pairs per entry, the concatenated
// names, then the concatenated payloads.
//
// Entries are sorted by name before encoding so identical inputs produce
// byte-identical blobs. The caller's slice is not modified. Names must be
// unique, non-empty, valid UTF-8, and along with payloads fit in a u32
// length.
func Write(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	count, err := safecast.Conv[uint32](len(sorted))
	if err != nil {
		return fmt.Errorf("pypack: entry count: %w", err)
	}

	buf := make([]byte, 0, headerSize+len(sorted)*indexRecordSize)
	buf = binary.LittleEndian.AppendUint32(buf, count)
	for i, e := range sorted {
		if e.Name == "" || !utf8.ValidString(e.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, e.Name)
		}
		if i > 0 && sorted[i-1].Name == e.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		nameLen, err := safecast.Conv[uint32](len(e.Name))
		if err != nil {
			return fmt.Errorf("pypack: module %s: name length: %w", e.Name, err)
		}
		dataLen, err := safecast.Conv[uint32](len(e.Data))
		if err != nil {
			return fmt.Errorf("pypack: module %s: data length: %w", e.Name, err)
		}
		buf = binary.LittleEndian.AppendUint32(buf, nameLen)
		buf = binary.LittleEndian.AppendUint32(buf, dataLen)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("pypack: write index: %w", err)
	}

	for _, e := range sorted {
		if _, err := io.WriteString(w, e.Name); err != nil {
			return fmt.Errorf("pypack: write names: %w", err)
		}
	}
	for _, e := range sorted {
		if _, err := w.Write(e.Data); err != nil {
			return fmt.Errorf("pypack: write values: %w", err)
		}
	}
	return nil
}

// Encode serializes entries into a new byte slice using Write.
func Encode(entries []Entry) ([]byte, error) {
	size := headerSize + len(entries)*indexRecordSize
	for _, e := range entries {
		size += len(e.Name) + len(e.Data)
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := Write(buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
