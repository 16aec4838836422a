// Package minon implements encoding and decoding of minimal object
// notation, a self-describing text format of tagged, length-prefixed
// records.
//
// # Wire Format
//
// A record is a name, a decimal content length, and an optional content
// span, joined by single-character delimiters:
//
//	record   := name '|' length '~' content?
//	name     := one or more characters, none of which is '|' or '~'
//	length   := decimal digits; "0" iff content is absent
//	content  := exactly <length> bytes, opaque
//	sequence := record*    (concatenated, no separator)
//
// For example, "greeting|13~Hello, world!" decodes to a single Record
// with Name "greeting" and Content "Hello, world!".
//
// Content is trusted opaque bytes: it may contain '|', '~', or further
// concatenated records. The length counter is the only boundary marker,
// so there is no escaping mechanism anywhere in the format. Names, by
// contrast, must not contain either delimiter; the format provides no
// way to encode one that does.
//
// # Nesting
//
// Decoding never recurses into content. A record whose content is itself
// a sequence of records is decoded by re-invoking ParseAll on its
// Content bytes. This keeps binary payloads safe from misinterpretation
// and leaves the structure of content entirely to the caller.
//
// # Errors
//
// All parse failures are terminal for the buffer that produced them and
// match one of four sentinels via errors.Is: ErrNoStructure,
// ErrIncomplete, ErrBadStructure and ErrNoContent. Wrapped detail names
// the field, the record and the position involved.
package minon
