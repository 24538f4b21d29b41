// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"encoding/binary"
	"io"
)

// A GLB blob is a 12-byte header followed by chunks, the
// first of which holds the JSON document.
// Every field is a little-endian uint32.
type (
	glbHeader struct{ Magic, Version, Length uint32 }
	glbChunk  struct{ Length, Type uint32 }
)

const (
	glbMagic   = 0x46546c67 // glTF
	glbVersion = 2

	chunkJSON = 0x4e4f534a // JSON
	chunkBIN  = 0x004e4942 // BIN\0
)

func readHeader(r io.Reader) (h glbHeader, ok bool) {
	if binary.Read(r, binary.LittleEndian, &h) != nil {
		return
	}
	ok = h.Magic == glbMagic && h.Version == glbVersion
	return
}

// IsGLB returns whether r refers to a binary glTF (version 2).
// It assumes that r was positioned accordingly.
func IsGLB(r io.Reader) bool {
	_, ok := readHeader(r)
	return ok
}

// SeekJSON reads the GLB header and the header of the JSON
// chunk from r, which must refer to an unread GLB blob.
// The next n bytes of r are the JSON document.
func SeekJSON(r io.Reader) (n int, err error) {
	h, ok := readHeader(r)
	if !ok {
		return 0, newErr("not a GLB blob")
	}
	var c glbChunk
	if err = binary.Read(r, binary.LittleEndian, &c); err != nil {
		return 0, newErr("GLB chunk: " + err.Error())
	}
	if c.Type != chunkJSON || c.Length == 0 || uint64(c.Length)+20 > uint64(h.Length) {
		return 0, newErr("invalid GLB chunk")
	}
	return int(c.Length), nil
}

// DecodeGLB decodes the JSON chunk of the GLB blob in r.
// The binary chunk, if any, is not read.
func DecodeGLB(r io.Reader) (*GLTF, error) {
	n, err := SeekJSON(r)
	if err != nil {
		return nil, err
	}
	return Decode(io.LimitReader(r, int64(n)))
}
