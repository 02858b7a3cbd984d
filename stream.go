package rngkit

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Stream provides little-endian word serialization for generator state
// and keystream material. It wraps bytes.Buffer and adds fixed-width
// integer methods in the byte order every word format in this package
// uses (the ChaCha block function serializes its 16 working words
// little-endian, and seed material is expanded the same way).
//
// For general binary operations outside this package, use
// encoding/binary directly.
type Stream struct {
	*bytes.Buffer
}

// NewStream creates a new Stream from a byte slice.
// The Stream wraps a bytes.Buffer initialized with the provided data.
func NewStream(buf []byte) *Stream {
	return &Stream{bytes.NewBuffer(buf)}
}

// ReadUint32LE reads a little-endian uint32 from the stream. A stream
// holding fewer than four bytes is an error, not a partial word.
func (s *Stream) ReadUint32LE() (uint32, error) {
	bts := make([]byte, 4)
	if _, err := io.ReadFull(s, bts); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bts), nil
}

// ReadUint64LE reads a little-endian uint64 from the stream.
func (s *Stream) ReadUint64LE() (uint64, error) {
	bts := make([]byte, 8)
	if _, err := io.ReadFull(s, bts); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bts), nil
}

// WriteUint32LE writes a little-endian uint32 to the stream.
// This is the serialization used for ChaCha keystream words.
func (s *Stream) WriteUint32LE(i uint32) error {
	bts := make([]byte, 4)
	binary.LittleEndian.PutUint32(bts, i)
	_, err := s.Write(bts)
	return err
}

// WriteUint64LE writes a little-endian uint64 to the stream.
func (s *Stream) WriteUint64LE(i uint64) error {
	bts := make([]byte, 8)
	binary.LittleEndian.PutUint64(bts, i)
	_, err := s.Write(bts)
	return err
}
