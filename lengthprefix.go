package iso8583

import (
	"encoding/binary"
	"fmt"
)

// LengthPrefixKind selects how WriteLengthPrefix/ReadLengthPrefix frame a
// message length ahead of its bytes. This is transport framing, not part
// of the codec's own wire format — length framing above the message layer
// (e.g. a 2-byte NBO prefix used by some acquirer links) is the
// transport's concern, not the message codec's. MessageFactory.Parse and
// IsoMessage.Write never call these helpers themselves.
type LengthPrefixKind int

const (
	// LengthPrefixBinary2 is a 2-byte big-endian binary length.
	LengthPrefixBinary2 LengthPrefixKind = iota
	// LengthPrefixASCII4 is a 4-ASCII-digit decimal length.
	LengthPrefixASCII4
)

// WriteLengthPrefix renders the byte length of payload as a prefix of kind,
// followed by payload itself, ready to hand to a transport writer.
func WriteLengthPrefix(kind LengthPrefixKind, payload []byte) ([]byte, error) {
	switch kind {
	case LengthPrefixBinary2:
		if len(payload) > 0xFFFF {
			return nil, fmt.Errorf("iso8583: payload of %d bytes too long for a 2-byte length prefix", len(payload))
		}
		out := make([]byte, 2+len(payload))
		binary.BigEndian.PutUint16(out[:2], uint16(len(payload)))
		copy(out[2:], payload)
		return out, nil
	case LengthPrefixASCII4:
		if len(payload) > 9999 {
			return nil, fmt.Errorf("iso8583: payload of %d bytes too long for a 4-digit ASCII length prefix", len(payload))
		}
		out := make([]byte, 0, 4+len(payload))
		out = append(out, []byte(fmt.Sprintf("%04d", len(payload)))...)
		out = append(out, payload...)
		return out, nil
	default:
		return nil, fmt.Errorf("iso8583: unknown length prefix kind %d", kind)
	}
}

// ReadLengthPrefix reads a length prefix of kind from the start of buf and
// returns the declared payload length and the prefix's byte width.
func ReadLengthPrefix(kind LengthPrefixKind, buf []byte) (length int, prefixWidth int, err error) {
	switch kind {
	case LengthPrefixBinary2:
		if len(buf) < 2 {
			return 0, 0, &TruncatedError{Needed: 2, Have: len(buf), Section: "length prefix"}
		}
		return int(binary.BigEndian.Uint16(buf[:2])), 2, nil
	case LengthPrefixASCII4:
		if len(buf) < 4 {
			return 0, 0, &TruncatedError{Needed: 4, Have: len(buf), Section: "length prefix"}
		}
		n := 0
		for _, r := range buf[:4] {
			if r < '0' || r > '9' {
				return 0, 0, fmt.Errorf("iso8583: length prefix byte %q is not an ASCII digit", r)
			}
			n = n*10 + int(r-'0')
		}
		return n, 4, nil
	default:
		return 0, 0, fmt.Errorf("iso8583: unknown length prefix kind %d", kind)
	}
}
