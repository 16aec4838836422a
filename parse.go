package minon

// ParseOne decodes the first record in data. Bytes after the record's
// end are ignored; use ParseAll to require that the whole buffer is
// consumed, or a Scanner to keep decoding from where this record ended.
func ParseOne(data []byte) (Record, error) {
	return NewScanner(data).Scan()
}

// ParseAll decodes data as a back-to-back sequence of records,
// succeeding only when the final record's end coincides exactly with
// the end of the buffer. An empty buffer is a valid empty sequence. Any
// scan error aborts the whole parse: no partial results are returned.
//
// ParseAll never recurses into content. A record whose content is
// itself a sequence is decoded by calling ParseAll again on its
// Content bytes.
func ParseAll(data []byte) (Sequence, error) {
	var seq Sequence
	s := NewScanner(data)
	for s.N < len(s.B) {
		rec, err := s.Scan()
		if err != nil {
			return nil, err
		}
		seq = append(seq, rec)
	}
	return seq, nil
}
