package iso8583

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Charset governs how ALPHA and LLVAR/LLLVAR text payloads are converted
// between the wire's byte representation and Go strings. The default is
// ISO-8859-1 (Latin-1): one byte per character, so a byte-counted length
// prefix and a character-counted length prefix coincide. UTF8Charset is an
// explicit opt-in for callers who know their counterpart encodes non-Latin
// text; per the prefix-is-always-bytes rule, the declared length still
// counts encoded bytes, not runes, once UTF-8 is selected.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// DefaultCharset returns the ISO-8859-1 charset.
func DefaultCharset() *Charset {
	return &Charset{name: "ISO-8859-1", enc: charmap.ISO8859_1}
}

// UTF8Charset returns the UTF-8 charset. Selecting it is a documented
// deviation from the one-byte-per-character assumption that LLVAR/LLLVAR
// prefixes otherwise rely on; length prefixes remain byte counts.
func UTF8Charset() *Charset {
	return &Charset{name: "UTF-8"}
}

// Name reports the charset's label, for logging and diagnostics.
func (c *Charset) Name() string { return c.name }

// Encode converts s from Go's internal UTF-8 representation to the
// charset's wire bytes.
func (c *Charset) Encode(s string) ([]byte, error) {
	if c == nil || c.enc == nil {
		return []byte(s), nil
	}
	return c.enc.NewEncoder().Bytes([]byte(s))
}

// Decode converts wire bytes in the charset's encoding back to a Go
// string.
func (c *Charset) Decode(b []byte) (string, error) {
	if c == nil || c.enc == nil {
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
