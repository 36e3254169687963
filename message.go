package iso8583

import (
	"fmt"
	"log/slog"
	"sort"
)

// IsoMessage is an ordered, bitmap-indexed collection of fields 2..128
// plus an optional header and terminator. Instances are owned by a single
// producer or consumer and are never shared across goroutines; the factory
// that produces them never retains a reference once NewMessage, Create
// Response, or Parse returns.
type IsoMessage struct {
	Header     string
	Type       uint16
	Terminator int // -1 means no terminator byte
	fields     map[int]Field
	charset    *Charset
}

// newIsoMessage builds an empty message with the given header/type/
// terminator and charset, ready for SetField calls.
func newIsoMessage(header string, msgType uint16, terminator int, cs *Charset) *IsoMessage {
	return &IsoMessage{
		Header:     header,
		Type:       msgType,
		Terminator: terminator,
		fields:     make(map[int]Field),
		charset:    cs,
	}
}

// SetField installs field i, 2..128. Field 1 is reserved for the
// secondary-bitmap indicator and can never be set through this API.
func (m *IsoMessage) SetField(i int, f Field) error {
	if i == 1 {
		return ErrFieldOneReserved
	}
	if i < 2 || i > MaxFieldNumber {
		return ErrInvalidFieldNumber
	}
	m.fields[i] = f
	return nil
}

// SetValue is a convenience wrapper that builds an IsoValue[string] from a
// raw payload and installs it at index i.
func (m *IsoMessage) SetValue(i int, raw string, kind IsoType, declaredLength int) error {
	return m.SetField(i, NewIsoValue(kind, raw, declaredLength))
}

// HasField reports whether index i is present.
func (m *IsoMessage) HasField(i int) bool {
	_, ok := m.fields[i]
	return ok
}

// GetField returns field i, or (nil, false) if absent.
func (m *IsoMessage) GetField(i int) (Field, bool) {
	f, ok := m.fields[i]
	return f, ok
}

// RemoveField deletes field i if present; removing an absent field is a
// no-op.
func (m *IsoMessage) RemoveField(i int) {
	delete(m.fields, i)
}

// PresentIndices returns the sorted list of field indices (2..128)
// currently installed.
func (m *IsoMessage) PresentIndices() []int {
	idx := make([]int, 0, len(m.fields))
	for i := range m.fields {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// hasSecondaryBitmap reports whether any present index is ≥ 65, which
// forces the secondary bitmap and field-1 indicator bit on the wire.
func (m *IsoMessage) hasSecondaryBitmap() bool {
	for i := range m.fields {
		if i >= 65 {
			return true
		}
	}
	return false
}

// Write renders the message to its wire form: header, four hex MTI
// digits, bitmap, then every present field's encoding in ascending index
// order, followed by the terminator byte if configured.
func (m *IsoMessage) Write() ([]byte, error) {
	out := make([]byte, 0, 64)
	out = append(out, []byte(m.Header)...)
	out = append(out, []byte(fmt.Sprintf("%04X", m.Type))...)

	indices := m.PresentIndices()
	bm, err := bitmapFromIndices(indices)
	if err != nil {
		return nil, err
	}
	out = append(out, bm.encodeHex()...)

	for _, i := range indices {
		f := m.fields[i]
		enc, err := f.encode(m.charset)
		if err != nil {
			return nil, &FieldError{Field: i, Err: err}
		}
		out = append(out, enc...)
	}

	if m.Terminator >= 0 {
		out = append(out, byte(m.Terminator))
	}
	return out, nil
}

// Clone deep-copies the message: every field is cloned, so mutating the
// copy never affects the original (and vice versa). Available to callers
// who want an independent working copy of a message they hold;
// NewMessage/CreateResponse do not call it, they clone template and request
// fields one by one.
func (m *IsoMessage) Clone() *IsoMessage {
	clone := newIsoMessage(m.Header, m.Type, m.Terminator, m.charset)
	for i, f := range m.fields {
		clone.fields[i] = f.Clone()
	}
	return clone
}

// LogValue implements slog.LogValuer, masking fields that commonly carry
// sensitive cardholder data (PAN, track data, PIN block) rather than
// logging them raw.
func (m *IsoMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("header", m.Header),
		slog.String("mti", fmt.Sprintf("%04X", m.Type)),
		slog.Any("fields", m.PresentIndices()),
	}
	for _, sensitive := range []int{2, 35, 45, 52} {
		if m.HasField(sensitive) {
			attrs = append(attrs, slog.Bool(fmt.Sprintf("field_%d_present", sensitive), true))
		}
	}
	return slog.GroupValue(attrs...)
}
