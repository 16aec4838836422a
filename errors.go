package minon

import "errors"

var (
	// ErrNoStructure indicates that the buffer ran out while a delimiter
	// ('|' or '~') was still expected; the data is not in the record
	// format at all.
	ErrNoStructure = errors.New("minon: no structure: data does not follow the name|length~content shape")

	// ErrIncomplete indicates that a delimiter or length field promised
	// more data, but the buffer ended before that data was fully present.
	// Wrapped detail names the field or record and the missing byte count.
	ErrIncomplete = errors.New("minon: incomplete data")

	// ErrBadStructure indicates that a length field's text could not be
	// parsed as a non-negative integer. Wrapped detail echoes the
	// offending text.
	ErrBadStructure = errors.New("minon: bad structure")

	// ErrNoContent indicates an attempt to scan content for a record whose
	// declared length is zero. Scan skips the content field entirely for
	// such records, so this is only reachable by driving the field
	// scanners directly.
	ErrNoContent = errors.New("minon: record has no content")

	// ErrTrailingData is returned by UnmarshalBinary when bytes remain
	// after the end of the decoded record, indicating a malformed or
	// ambiguous payload. ParseOne ignores trailing bytes instead.
	ErrTrailingData = errors.New("minon: trailing data found after decoding")
)
