package minon

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their encoded size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when encoded.
	Size() int
}

// Marshaler defines the core methods for encoding an object into the
// record format. It integrates standard library interfaces and provides
// a high-performance, allocation-free option.
type Marshaler interface {
	// encoding.BinaryMarshaler provides the primary encoding method.
	// It allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo provides stream-based writing.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo is a zero-allocation encoding method. It encodes the
	// object into a pre-allocated buffer, returning io.ErrShortWrite
	// if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding record-format bytes
// into an object.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes data from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom provides reading from a stream. The stream is fully
	// buffered before decoding; the format requires the whole encoding
	// to be available up front.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing encoder/decoder
// for the record format. Both Record and Sequence implement it.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
