package minon

import "io"

// Sequence is an ordered run of records, encoded back to back with no
// separator. It is the programmatic handle for composing multi-record
// buffers and the result type of ParseAll.
type Sequence []Record

var _ Codec = (*Sequence)(nil)

// Len returns the number of records in the sequence.
func (q Sequence) Len() int {
	return len(q)
}

// Size returns the total encoded size of the sequence in bytes.
func (q Sequence) Size() int {
	size := 0
	for i := range q {
		size += q[i].Size()
	}
	return size
}

// Validate checks every record in the sequence, returning the first
// failure.
func (q Sequence) Validate() error {
	for i := range q {
		if err := q[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AppendEncode appends the concatenated encodings of all records to dst
// and returns the extended slice.
func (q Sequence) AppendEncode(dst []byte) []byte {
	for i := range q {
		dst = q[i].AppendEncode(dst)
	}
	return dst
}

// MarshalTo encodes the sequence into a pre-allocated buffer, returning
// the number of bytes written. It returns io.ErrShortWrite if the
// buffer is smaller than Size().
func (q Sequence) MarshalTo(buf []byte) (int, error) {
	if len(buf) < q.Size() {
		return 0, io.ErrShortWrite
	}
	n := 0
	for i := range q {
		written, err := q[i].MarshalTo(buf[n:])
		n += written
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// MarshalBinary implements the standard encoding.BinaryMarshaler
// interface.
func (q Sequence) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(q)
}

// WriteTo implements the io.WriterTo interface.
func (q Sequence) WriteTo(w io.Writer) (int64, error) {
	return WriteToGeneric(q, w)
}

// UnmarshalBinary implements the standard encoding.BinaryUnmarshaler
// interface; it is ParseAll with replacement semantics, so the whole
// buffer must be consumed.
func (q *Sequence) UnmarshalBinary(data []byte) error {
	seq, err := ParseAll(data)
	if err != nil {
		return err
	}
	*q = seq
	return nil
}

// ReadFrom implements the io.ReaderFrom interface. The stream is fully
// buffered before decoding.
func (q *Sequence) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(q, r)
}

// String returns the sequence's canonical textual encoding.
func (q Sequence) String() string {
	return string(q.AppendEncode(make([]byte, 0, q.Size())))
}
