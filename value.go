package iso8583

import (
	"fmt"
	"time"
)

// Field is the non-generic view of a data element stored inside an
// IsoMessage. IsoValue[T] implements it so a message can hold a
// heterogeneous set of typed cells in one map without reflection at the
// call site.
type Field interface {
	FieldKind() IsoType
	DeclaredLength() int
	RawString() string
	Clone() Field
	encode(cs *Charset) ([]byte, error)
}

// CustomFieldCodec lets a caller override how a field's wire bytes map to
// and from a Go value of type T. Decode returning a nil pointer (for
// pointer T) or the zero value alongside a non-nil error falls back to
// exposing the raw decoded string through RawString rather than failing
// the whole parse — a malformed custom field should not be fatal to the
// rest of the message.
type CustomFieldCodec[T any] interface {
	Encode(v T) (string, error)
	Decode(s string) (T, error)
}

// AnyFieldCodec is the type-erased form of CustomFieldCodec[T], used where
// a field's custom-coded value type is only known at schema-registration
// time (FieldParseInfo.Codec) rather than at the call site. AdaptCodec
// builds one from any CustomFieldCodec[T].
type AnyFieldCodec interface {
	EncodeAny(v any) (string, error)
	DecodeAny(s string) (any, error)
}

// AdaptCodec type-erases a CustomFieldCodec[T] into an AnyFieldCodec, so it
// can be attached to a FieldParseInfo whose schema map holds entries for
// many different T's side by side.
func AdaptCodec[T any](c CustomFieldCodec[T]) AnyFieldCodec {
	return codecAdapter[T]{c}
}

type codecAdapter[T any] struct{ c CustomFieldCodec[T] }

func (a codecAdapter[T]) EncodeAny(v any) (string, error) {
	t, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("iso8583: custom codec value has type %T, expected %T", v, t)
	}
	return a.c.Encode(t)
}

func (a codecAdapter[T]) DecodeAny(s string) (any, error) {
	return a.c.Decode(s)
}

// IsoValue is a typed, length-aware field cell: the kind (IsoType) acts as
// the tag, value is the decoded Go representation, and declaredLength is
// the schema-supplied length governing fixed-width kinds (NUMERIC, ALPHA,
// BINARY). For LL/LLL-prefixed kinds it is recorded but not enforced: the
// payload is checked only against the kind's own maximum (99 or 999).
type IsoValue[T any] struct {
	kind           IsoType
	value          T
	declaredLength int
	raw            string // the undecoded wire string, kept for RawString and codec fallback
	codec          CustomFieldCodec[T]
	anyCodec       AnyFieldCodec // set instead of codec when T is any (schema-driven custom fields)
}

// NewIsoValue builds a field cell of kind k carrying v, with declaredLength
// governing its wire width for fixed-length kinds.
func NewIsoValue[T any](k IsoType, v T, declaredLength int) *IsoValue[T] {
	return &IsoValue[T]{kind: k, value: v, declaredLength: declaredLength}
}

// WithCodec attaches a custom encode/decode hook and returns the receiver
// for chaining.
func (iv *IsoValue[T]) WithCodec(c CustomFieldCodec[T]) *IsoValue[T] {
	iv.codec = c
	return iv
}

// Value returns the decoded Go value held by the cell.
func (iv *IsoValue[T]) Value() T { return iv.value }

// SetValue replaces the decoded Go value.
func (iv *IsoValue[T]) SetValue(v T) { iv.value = v }

func (iv *IsoValue[T]) FieldKind() IsoType      { return iv.kind }
func (iv *IsoValue[T]) DeclaredLength() int     { return iv.declaredLength }
func (iv *IsoValue[T]) RawString() string       { return iv.raw }

func (iv *IsoValue[T]) Clone() Field {
	clone := *iv
	return &clone
}

// encode renders the cell to its wire representation: either via the
// attached custom codec, or via the kind's default encodeByKind.
func (iv *IsoValue[T]) encode(cs *Charset) ([]byte, error) {
	if iv.anyCodec != nil {
		s, err := iv.anyCodec.EncodeAny(any(iv.value))
		if err != nil {
			return nil, err
		}
		iv.raw = s
		if iv.kind.IsBinary() {
			return encodeBinaryByKind(iv.kind, []byte(s), iv.declaredLength)
		}
		return encodeRawByKind(iv.kind, s, iv.declaredLength, cs)
	}
	if iv.codec != nil {
		s, err := iv.codec.Encode(iv.value)
		if err != nil {
			return nil, err
		}
		iv.raw = s
		if iv.kind.IsBinary() {
			return encodeBinaryByKind(iv.kind, []byte(s), iv.declaredLength)
		}
		return encodeRawByKind(iv.kind, s, iv.declaredLength, cs)
	}
	return encodeByKind(iv.kind, iv.value, iv.declaredLength, cs)
}

// decodeIsoValue builds an IsoValue[T] from wire bytes already stripped of
// any length prefix, using codec if non-nil, falling back to the raw
// decoded string on a codec decode failure rather than failing the field.
func decodeIsoValue[T any](k IsoType, raw string, declaredLength int, codec CustomFieldCodec[T]) (*IsoValue[T], error) {
	iv := &IsoValue[T]{kind: k, declaredLength: declaredLength, raw: raw, codec: codec}
	if codec != nil {
		v, err := codec.Decode(raw)
		if err != nil {
			// Best-effort: keep the field present with its raw string and the
			// zero value of T rather than failing the parse.
			return iv, nil
		}
		iv.value = v
		return iv, nil
	}
	v, err := decodeByKind[T](k, raw)
	if err != nil {
		return nil, err
	}
	iv.value = v
	return iv, nil
}

// encodeByKind dispatches encoding of a typed value by kind. Supported T
// bindings are string (NUMERIC, ALPHA, DATE*, TIME), []byte (BINARY,
// LLBIN, LLLBIN), int64 (NUMERIC), Amount (AMOUNT), and time.Time
// (DATE10, DATE4, DATEEXP, TIME).
func encodeByKind(k IsoType, value any, declaredLength int, cs *Charset) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return encodeRawByKind(k, v, declaredLength, cs)
	case []byte:
		return encodeBinaryByKind(k, v, declaredLength)
	case int64:
		return encodeRawByKind(k, formatNumeric(v, declaredLength), declaredLength, cs)
	case Amount:
		return encodeRawByKind(k, v.String(), declaredLength, cs)
	case time.Time:
		s, err := formatDateByKind(k, v)
		if err != nil {
			return nil, err
		}
		return encodeRawByKind(k, s, declaredLength, cs)
	default:
		return nil, fmt.Errorf("iso8583: unsupported field value type %T for kind %s", value, k)
	}
}

func decodeByKind[T any](k IsoType, raw string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(raw).(T), nil
	case []byte:
		return any([]byte(raw)).(T), nil
	case int64:
		n, err := parseNumeric(raw)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	case Amount:
		a, err := ParseAmount(raw)
		if err != nil {
			return zero, err
		}
		return any(a).(T), nil
	case time.Time:
		t, err := parseDateByKind(k, raw)
		if err != nil {
			return zero, err
		}
		return any(t).(T), nil
	default:
		return zero, fmt.Errorf("iso8583: unsupported decode target type %T for kind %s", zero, k)
	}
}
