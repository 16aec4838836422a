package minon

import (
	"fmt"
	"io"
	"strings"
)

// Record field delimiters. Names must not contain either; content is an
// opaque counted span and may contain both.
const (
	nameDelim   = '|'
	lengthDelim = '~'
)

// Record is one decoded name/length/content unit.
//
// Length always equals the byte count of Content, and Content is nil
// exactly when Length is zero. Construction through NewRecord and
// SetContent maintains the invariant automatically; records decoded by
// a Scanner are fully formed with both fields set from the scan.
// Validate checks the invariant for records assembled by hand.
type Record struct {
	Name    string // tag, free of '|' and '~'
	Length  int    // exact byte count of Content
	Content []byte // opaque payload, nil when absent
}

var _ Codec = (*Record)(nil)

// NewRecord creates a Record with the given name and no content.
func NewRecord(name string) Record {
	return Record{Name: name}
}

// SetContent attaches content to the record and derives Length from it.
// Setting empty content returns the record to the absent-content state.
// The record keeps the slice it is given; it does not copy.
func (r *Record) SetContent(content []byte) {
	if len(content) == 0 {
		r.Length = 0
		r.Content = nil
		return
	}
	r.Length = len(content)
	r.Content = content
}

// Validate checks the record against the format's construction rules:
// a non-empty, delimiter-free name and a Length matching Content
// exactly. Records built through NewRecord and SetContent always pass.
func (r *Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: record name is empty", ErrBadStructure)
	}
	if strings.ContainsAny(r.Name, "|~") {
		return fmt.Errorf("%w: record name %q contains a delimiter", ErrBadStructure, r.Name)
	}
	if (r.Content == nil) != (r.Length == 0) {
		return fmt.Errorf("%w: content presence does not match declared length %d", ErrBadStructure, r.Length)
	}
	if r.Content != nil && len(r.Content) != r.Length {
		return fmt.Errorf("%w: declared length %d does not match %d content bytes", ErrBadStructure, r.Length, len(r.Content))
	}
	return nil
}

// Size returns the exact encoded size of the record in bytes.
func (r *Record) Size() int {
	return len(r.Name) + 1 + DecimalLen(r.Length) + 1 + r.Length
}

// AppendEncode appends the record's canonical encoding to dst and
// returns the extended slice.
func (r *Record) AppendEncode(dst []byte) []byte {
	dst = append(dst, r.Name...)
	dst = append(dst, nameDelim)
	dst = AppendDecimal(dst, r.Length)
	dst = append(dst, lengthDelim)
	return append(dst, r.Content...)
}

// MarshalTo encodes the record into a pre-allocated buffer, returning
// the number of bytes written. It returns io.ErrShortWrite if the
// buffer is smaller than Size().
func (r *Record) MarshalTo(buf []byte) (int, error) {
	if len(buf) < r.Size() {
		return 0, io.ErrShortWrite
	}
	n := copy(buf, r.Name)
	buf[n] = nameDelim
	n++
	n += len(AppendDecimal(buf[n:n], r.Length))
	buf[n] = lengthDelim
	n++
	n += copy(buf[n:], r.Content)
	return n, nil
}

// MarshalBinary implements the standard encoding.BinaryMarshaler
// interface. It allocates a new byte slice; use MarshalTo or
// AppendEncode to reuse one.
func (r *Record) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(r)
}

// WriteTo implements the io.WriterTo interface.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	return WriteToGeneric(r, w)
}

// UnmarshalBinary implements the standard encoding.BinaryUnmarshaler
// interface. It decodes exactly one record and fails with
// ErrTrailingData if bytes remain after it; use ParseOne to decode a
// leading record while ignoring the rest of the buffer.
func (r *Record) UnmarshalBinary(data []byte) error {
	s := NewScanner(data)
	rec, err := s.Scan()
	if err != nil {
		return err
	}
	if s.N != len(data) {
		return fmt.Errorf("%w: %d bytes remain after record %q", ErrTrailingData, len(data)-s.N, rec.Name)
	}
	*r = rec
	return nil
}

// ReadFrom implements the io.ReaderFrom interface. The stream is fully
// buffered before decoding.
func (r *Record) ReadFrom(reader io.Reader) (int64, error) {
	return ReadFromGeneric(r, reader)
}

// String returns the record's canonical textual encoding.
func (r *Record) String() string {
	return string(r.AppendEncode(make([]byte, 0, r.Size())))
}
