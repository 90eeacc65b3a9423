package pyembed

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"unicode/utf8"
)

const (
	// headerSize is the length of the entry-count header in bytes.
	headerSize = 4

	// indexRecordSize is the length of one index record in bytes:
	// a u32 name length followed by a u32 data length.
	indexRecordSize = 8
)

// ModuleMap holds the modules decoded from a single blob.
//
// A ModuleMap is immutable after ParseModulesBlob returns. Data accessors
// return read-only slices that alias the blob.
type ModuleMap struct {
	modules map[string][]byte
}

// ParseModulesBlob decodes a modules blob into a ModuleMap.
//
// The provided data is retained: module data returned by the map aliases it
// directly, without copying. Callers must not modify data after calling
// ParseModulesBlob.
//
// Returns ErrTooSmall when data cannot hold the entry-count header, and an
// error wrapping ErrMalformed when a section extends past the end of data
// or a module name is not valid UTF-8. Bytes past the values section are
// ignored. When the same name appears more than once, the last occurrence
// in index order wins.
func ParseModulesBlob(data []byte) (*ModuleMap, error) {
	if len(data) < headerSize {
		return nil, ErrTooSmall
	}
	count := binary.LittleEndian.Uint32(data)

	blobLen := uint64(len(data))
	indexEnd := uint64(headerSize) + uint64(count)*indexRecordSize
	if indexEnd > blobLen {
		return nil, fmt.Errorf("%w: index of %d entries exceeds %d-byte blob", ErrMalformed, count, len(data))
	}

	// Sums of at most 2^32 u32 terms fit in uint64.
	var nameTotal, dataTotal uint64
	for off := uint64(headerSize); off < indexEnd; off += indexRecordSize {
		nameTotal += uint64(binary.LittleEndian.Uint32(data[off:]))
		dataTotal += uint64(binary.LittleEndian.Uint32(data[off+4:]))
	}
	remaining := blobLen - indexEnd
	if nameTotal > remaining {
		return nil, fmt.Errorf("%w: names section of %d bytes exceeds remaining %d bytes", ErrMalformed, nameTotal, remaining)
	}
	if dataTotal > remaining-nameTotal {
		return nil, fmt.Errorf("%w: values section of %d bytes exceeds remaining %d bytes", ErrMalformed, dataTotal, remaining-nameTotal)
	}

	modules := make(map[string][]byte, int(count))
	nameOff := indexEnd
	dataOff := indexEnd + nameTotal
	for off := uint64(headerSize); off < indexEnd; off += indexRecordSize {
		nameLen := uint64(binary.LittleEndian.Uint32(data[off:]))
		dataLen := uint64(binary.LittleEndian.Uint32(data[off+4:]))

		name := data[nameOff : nameOff+nameLen]
		if !utf8.Valid(name) {
			return nil, fmt.Errorf("%w: module name at offset %d is not valid UTF-8", ErrMalformed, nameOff)
		}
		modules[string(name)] = data[dataOff : dataOff+dataLen : dataOff+dataLen]

		nameOff += nameLen
		dataOff += dataLen
	}

	return &ModuleMap{modules: modules}, nil
}

// Get returns the data for the named module.
//
// The returned slice aliases the parsed blob and must be treated as immutable.
func (m *ModuleMap) Get(name string) ([]byte, bool) {
	data, ok := m.modules[name]
	return data, ok
}

// Has reports whether the named module is present.
func (m *ModuleMap) Has(name string) bool {
	_, ok := m.modules[name]
	return ok
}

// Len returns the number of modules.
func (m *ModuleMap) Len() int {
	return len(m.modules)
}

// Names returns an iterator over module names in unspecified order.
func (m *ModuleMap) Names() iter.Seq[string] {
	return maps.Keys(m.modules)
}
