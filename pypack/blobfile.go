package pypack

import (
	"bytes"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the zstd frame magic number (RFC 8878).
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// WriteBlobFile writes blob to path, optionally zstd-framed.
//
// Compression affects only on-disk storage; ReadBlobFile returns the
// original blob bytes either way.
func WriteBlobFile(path string, blob []byte, compression Compression) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	switch compression {
	case CompressionNone:
		_, err = f.Write(blob)
		return err
	case CompressionZstd:
		enc, encErr := zstd.NewWriter(f, zstd.WithEncoderConcurrency(1), zstd.WithLowerEncoderMem(true))
		if encErr != nil {
			return fmt.Errorf("pypack: create zstd encoder: %w", encErr)
		}
		if _, err = enc.Write(blob); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}

// ReadBlobFile reads a blob file written by WriteBlobFile.
//
// Files beginning with the zstd frame magic are decompressed; anything
// else is returned as read.
func ReadBlobFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("pypack: create zstd decoder: %w", err)
	}
	defer dec.Close()

	blob, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("pypack: decompress %s: %w", path, err)
	}
	return blob, nil
}
