package iso8583

import (
	"fmt"
)

// encodeRawByKind renders a text payload s to wire bytes for kind k, adding
// the length prefix for LLVAR/LLLVAR and left/right padding for
// NUMERIC/ALPHA. declaredLength governs fixed-width kinds; for DATE*/TIME/
// AMOUNT the kind's own intrinsic length is used instead.
func encodeRawByKind(k IsoType, s string, declaredLength int, cs *Charset) ([]byte, error) {
	switch k {
	case NUMERIC:
		return padNumeric(s, declaredLength, cs)
	case ALPHA:
		return padAlpha(s, declaredLength, cs)
	case DATE10, DATE4, DATEEXP, TIME, AMOUNT:
		n, _ := k.intrinsicLen()
		if len(s) != n {
			return nil, fmt.Errorf("iso8583: %s value %q is not %d characters", k, s, n)
		}
		return encodeText(s, cs)
	case LLVAR, LLLVAR:
		return prefixedPayload(k, []byte(s), cs)
	default:
		return nil, fmt.Errorf("iso8583: kind %s does not accept a text payload", k)
	}
}

// encodeBinaryByKind renders a raw byte payload for BINARY/LLBIN/LLLBIN.
func encodeBinaryByKind(k IsoType, b []byte, declaredLength int) ([]byte, error) {
	switch k {
	case BINARY:
		if len(b) != declaredLength {
			return nil, fmt.Errorf("iso8583: BINARY value has %d bytes, declared length is %d", len(b), declaredLength)
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	case LLBIN, LLLBIN:
		return prefixedPayload(k, b, nil)
	default:
		return nil, fmt.Errorf("iso8583: kind %s does not accept a binary payload", k)
	}
}

// prefixedPayload writes an LL/LLL ASCII length prefix (in bytes, per the
// byte-length pinning of LLVAR/LLLVAR) followed by payload, charset-encoded
// for text kinds (cs non-nil) or written raw for binary kinds (cs nil).
func prefixedPayload(k IsoType, payload []byte, cs *Charset) ([]byte, error) {
	var body []byte
	var err error
	if cs != nil {
		body, err = transcodeBytes(payload, cs)
		if err != nil {
			return nil, err
		}
	} else {
		body = payload
	}
	width := k.PrefixWidth()
	max := k.MaxLength()
	if len(body) > max {
		return nil, fmt.Errorf("iso8583: %s payload of %d bytes exceeds max %d", k, len(body), max)
	}
	prefix := fmt.Sprintf("%0*d", width, len(body))
	out := make([]byte, 0, width+len(body))
	out = append(out, []byte(prefix)...)
	out = append(out, body...)
	return out, nil
}

// transcodeBytes re-encodes a caller-supplied UTF-8 byte slice through cs;
// since payload is already a []byte, this treats it as a string and
// round-trips it through the charset's Encode.
func transcodeBytes(payload []byte, cs *Charset) ([]byte, error) {
	return encodeText(string(payload), cs)
}

func encodeText(s string, cs *Charset) ([]byte, error) {
	b, err := cs.Encode(s)
	if err != nil {
		return nil, &EncodingError{Cause: err}
	}
	return b, nil
}

func decodeText(b []byte, cs *Charset) (string, error) {
	s, err := cs.Decode(b)
	if err != nil {
		return "", &EncodingError{Cause: err}
	}
	return s, nil
}

func padNumeric(s string, n int, cs *Charset) ([]byte, error) {
	if len(s) > n {
		return nil, fmt.Errorf("iso8583: NUMERIC value %q longer than declared length %d", s, n)
	}
	padded := make([]byte, n)
	for i := range padded {
		padded[i] = '0'
	}
	copy(padded[n-len(s):], s)
	return encodeText(string(padded), cs)
}

func padAlpha(s string, n int, cs *Charset) ([]byte, error) {
	if len(s) > n {
		return nil, fmt.Errorf("iso8583: ALPHA value %q longer than declared length %d", s, n)
	}
	padded := make([]byte, n)
	for i := range padded {
		padded[i] = ' '
	}
	copy(padded, s)
	return encodeText(string(padded), cs)
}

// parsedField is the uniform result of reading one field off the wire: its
// decoded text or binary payload and the number of bytes consumed.
type parsedField struct {
	text    string
	binary  []byte
	consumed int
}

// parseFieldAt reads one field of kind k at buf[offset:] per its kind's
// own wire contract, returning the decoded payload and bytes consumed.
// declaredLength governs fixed-width kinds; it is ignored for kinds with
// an intrinsic length and for variable kinds.
func parseFieldAt(buf []byte, offset int, fieldNum int, k IsoType, declaredLength int, cs *Charset) (parsedField, error) {
	switch k {
	case NUMERIC, ALPHA:
		return parseFixedText(buf, offset, fieldNum, k, declaredLength, cs)
	case DATE10, DATE4, DATEEXP, TIME, AMOUNT:
		n, _ := k.intrinsicLen()
		return parseFixedText(buf, offset, fieldNum, k, n, cs)
	case BINARY:
		return parseFixedBinary(buf, offset, fieldNum, k, declaredLength)
	case LLVAR, LLLVAR:
		return parseVariableText(buf, offset, fieldNum, k, cs)
	case LLBIN, LLLBIN:
		return parseVariableBinary(buf, offset, fieldNum, k)
	default:
		return parsedField{}, &ParseError{Offset: offset, Field: fieldNum, Kind: k, Cause: fmt.Errorf("unknown kind")}
	}
}

func parseFixedText(buf []byte, offset, fieldNum int, k IsoType, n int, cs *Charset) (parsedField, error) {
	if offset+n > len(buf) {
		return parsedField{}, &TruncatedError{Offset: offset, Needed: n, Have: len(buf) - offset, Field: fieldNum}
	}
	s, err := decodeText(buf[offset:offset+n], cs)
	if err != nil {
		return parsedField{}, &ParseError{Offset: offset, Field: fieldNum, Kind: k, Cause: err}
	}
	return parsedField{text: s, consumed: n}, nil
}

func parseFixedBinary(buf []byte, offset, fieldNum int, k IsoType, n int) (parsedField, error) {
	if offset+n > len(buf) {
		return parsedField{}, &TruncatedError{Offset: offset, Needed: n, Have: len(buf) - offset, Field: fieldNum}
	}
	b := make([]byte, n)
	copy(b, buf[offset:offset+n])
	return parsedField{binary: b, consumed: n}, nil
}

func parseVariableText(buf []byte, offset, fieldNum int, k IsoType, cs *Charset) (parsedField, error) {
	width := k.PrefixWidth()
	length, err := readLengthPrefix(buf, offset, fieldNum, k, width)
	if err != nil {
		return parsedField{}, err
	}
	start := offset + width
	if start+length > len(buf) {
		return parsedField{}, &TruncatedError{Offset: start, Needed: length, Have: len(buf) - start, Field: fieldNum}
	}
	s, err := decodeText(buf[start:start+length], cs)
	if err != nil {
		return parsedField{}, &ParseError{Offset: start, Field: fieldNum, Kind: k, Cause: err}
	}
	return parsedField{text: s, consumed: width + length}, nil
}

func parseVariableBinary(buf []byte, offset, fieldNum int, k IsoType) (parsedField, error) {
	width := k.PrefixWidth()
	length, err := readLengthPrefix(buf, offset, fieldNum, k, width)
	if err != nil {
		return parsedField{}, err
	}
	start := offset + width
	if start+length > len(buf) {
		return parsedField{}, &TruncatedError{Offset: start, Needed: length, Have: len(buf) - start, Field: fieldNum}
	}
	b := make([]byte, length)
	copy(b, buf[start:start+length])
	return parsedField{binary: b, consumed: width + length}, nil
}

func readLengthPrefix(buf []byte, offset, fieldNum int, k IsoType, width int) (int, error) {
	if offset+width > len(buf) {
		return 0, &TruncatedError{Offset: offset, Needed: width, Have: len(buf) - offset, Field: fieldNum, Section: "length prefix"}
	}
	n := 0
	for _, r := range buf[offset : offset+width] {
		if r < '0' || r > '9' {
			return 0, &ParseError{Offset: offset, Field: fieldNum, Kind: k, Cause: fmt.Errorf("length prefix byte %q is not an ASCII digit", r)}
		}
		n = n*10 + int(r-'0')
	}
	if n > k.MaxLength() {
		return 0, &ParseError{Offset: offset, Field: fieldNum, Kind: k, Cause: fmt.Errorf("declared length %d exceeds kind maximum %d", n, k.MaxLength())}
	}
	return n, nil
}
