package minon

import (
	"bytes"
	"encoding"
	"io"
)

// marshalerTo is the shape shared by Record and Sequence that the
// generic helpers build on.
type marshalerTo interface {
	Sizer
	MarshalTo(buf []byte) (int, error)
}

// MarshalBinaryGeneric provides a generic encoding.BinaryMarshaler
// implementation for any self-sizing MarshalTo implementer.
func MarshalBinaryGeneric[T marshalerTo](v T) ([]byte, error) {
	buf := make([]byte, v.Size())
	n, err := v.MarshalTo(buf)
	if err != nil {
		return nil, err
	}
	if n < len(buf) {
		return nil, io.ErrShortWrite
	}
	return buf, nil
}

// WriteToGeneric provides a generic io.WriterTo implementation.
// It adapts a type that can marshal to a byte slice to the streaming
// io.Writer interface.
func WriteToGeneric[T encoding.BinaryMarshaler](v T, w io.Writer) (int64, error) {
	buf, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), err
	}
	if n < len(buf) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// ReadFromGeneric provides a generic io.ReaderFrom implementation.
// WARNING: This is NOT a streaming implementation. It reads the entire
// io.Reader into a pooled memory buffer before unmarshalling; the
// format's length counters require the whole encoding up front. Decoded
// records copy their name and content out of the buffer, so the pooled
// buffer never outlives the call.
func ReadFromGeneric[T encoding.BinaryUnmarshaler](v T, r io.Reader) (int64, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return n, v.UnmarshalBinary(buf.Bytes())
}
