package iso8583tlv

import "fmt"

// Codec implements iso8583.CustomFieldCodec[[]TLV] (structurally — this
// package does not import iso8583, so the core's field constructors accept
// it by shape) for a BINARY/LLLBIN field carrying ICC data (DE 55 and
// similar). Decode never fails the surrounding field parse: a malformed
// nested TLV falls back to the field's raw string per the codec's
// best-effort contract, by construction here returning an error that
// MessageFactory.Parse (and decodeIsoValue) treats as a fallback rather
// than a ParseError.
type Codec struct{}

// Encode renders elems back to raw BER-TLV bytes, presented as a string so
// it composes with the core's string-based CustomFieldCodec hook.
func (Codec) Encode(elems []TLV) (string, error) {
	b, err := Pack(elems)
	if err != nil {
		return "", fmt.Errorf("iso8583tlv: encode: %w", err)
	}
	return string(b), nil
}

// Decode parses a raw field payload into its BER-TLV elements.
func (Codec) Decode(s string) ([]TLV, error) {
	elems, err := Parse([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("iso8583tlv: decode: %w", err)
	}
	return elems, nil
}
