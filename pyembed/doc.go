// Package pyembed resolves dotted Python module names to embedded source
// and bytecode without touching the filesystem.
//
// A Registry is built at process start from two modules blobs: one holding
// module source text, one holding compiled bytecode. Blobs are produced by
// the pypack package (typically at build time) and baked into the binary,
// for example with go:embed.
//
// # Blob format
//
// A modules blob is a little-endian binary container:
//
//	u32 count
//	count x (u32 name_length, u32 data_length)
//	names  section: concatenated UTF-8 names, no delimiters
//	values section: concatenated payloads, no delimiters
//
// Section boundaries are derived from the count and index records alone.
// Module data returned by the registry aliases the blob without copying.
//
// # Usage
//
//	//go:embed py_modules.bin
//	var sourceBlob []byte
//
//	//go:embed pyc_modules.bin
//	var codeBlob []byte
//
//	reg, err := pyembed.Build(sourceBlob, codeBlob)
//	if err != nil {
//	    return err
//	}
//	src, err := reg.GetSource("mypkg.mymodule")
package pyembed
