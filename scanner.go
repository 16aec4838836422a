package minon

import "fmt"

// Scanner is a cursor over an in-memory buffer that decodes records
// field by field. The cursor advances monotonically by exactly the
// bytes each field consumed, so after a successful Scan it sits at the
// start of the next record, if any.
//
// A Scanner is owned by one decode at a time and is not safe for
// concurrent use; independent buffers get independent Scanners. Any
// error is terminal for the buffer being scanned: the cursor is left
// wherever the failing field scanner stopped and scanning must not be
// resumed.
type Scanner struct {
	B []byte // buffer being scanned
	N int    // current scan position
}

// NewScanner creates a Scanner positioned at the start of b.
func NewScanner(b []byte) *Scanner {
	return &Scanner{B: b}
}

// Reset repositions the Scanner at the start of b, allowing reuse.
func (s *Scanner) Reset(b []byte) {
	s.B = b
	s.N = 0
}

// Size returns the size of the underlying buffer.
func (s *Scanner) Size() int {
	return len(s.B)
}

// Available returns the number of bytes left to scan.
func (s *Scanner) Available() int {
	length := len(s.B) - s.N
	if length <= 0 {
		return 0
	}
	return length
}

// Scan decodes the record starting at the cursor: name, then length,
// then content iff the declared length is non-zero. On success the
// cursor lands one past the record's final byte.
func (s *Scanner) Scan() (Record, error) {
	name, err := s.scanName()
	if err != nil {
		return Record{}, err
	}
	length, err := s.scanLength(name)
	if err != nil {
		return Record{}, err
	}
	rec := NewRecord(name)
	if length != 0 {
		content, err := s.scanContent(name, length)
		if err != nil {
			return Record{}, err
		}
		rec.SetContent(content)
	}
	return rec, nil
}

// scanName consumes bytes up to and including the first '|' and returns
// the bytes before it as the record name. The name scan has no escape
// mechanism and does not treat '~' specially; only '|' ends it.
func (s *Scanner) scanName() (string, error) {
	start := s.N
	for s.N < len(s.B) {
		if s.B[s.N] != nameDelim {
			s.N++
			continue
		}
		if s.N+1 >= len(s.B) {
			// The delimiter is the final byte, so no length field can follow.
			return "", fmt.Errorf("%w: no data after name (%s) field at position %d", ErrIncomplete, s.B[start:s.N], s.N)
		}
		name := internName(s.B[start:s.N])
		s.N++
		return name, nil
	}
	return "", ErrNoStructure
}

// scanLength consumes bytes up to and including the first '~' and
// parses the bytes before it as a non-negative decimal integer.
//
// A '~' as the final buffer byte is only valid when the parsed length
// is zero: an empty-content record ending exactly at buffer end. A
// non-zero length there promises content the buffer cannot hold.
func (s *Scanner) scanLength(name string) (int, error) {
	start := s.N
	for s.N < len(s.B) {
		if s.B[s.N] != lengthDelim {
			s.N++
			continue
		}
		text := s.B[start:s.N]
		length, err := parseLength(text)
		if err != nil {
			return 0, fmt.Errorf("%w: could not parse the length field, contains %q", ErrBadStructure, text)
		}
		if length != 0 && s.N+1 >= len(s.B) {
			return 0, fmt.Errorf("%w: no data after length field of record %q at position %d", ErrIncomplete, name, s.N)
		}
		s.N++
		return length, nil
	}
	return 0, ErrNoStructure
}

// scanContent consumes exactly length bytes verbatim and returns them
// as an independent copy. No delimiter is interpreted inside content.
// Must not be called with a zero length; Scan skips the content field
// for zero-length records.
func (s *Scanner) scanContent(name string, length int) ([]byte, error) {
	if length == 0 {
		return nil, fmt.Errorf("%w: record %q declares zero length", ErrNoContent, name)
	}
	if avail := len(s.B) - s.N; avail < length {
		return nil, fmt.Errorf("%w: record %q is missing %d content bytes", ErrIncomplete, name, length-avail)
	}
	content := make([]byte, length)
	copy(content, s.B[s.N:])
	s.N += length
	return content, nil
}
