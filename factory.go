package iso8583

import (
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// FieldParseInfo is a per (message-type, index) parse schema entry: kind,
// declared length for fixed kinds, and an optional custom codec. It is
// pure and immutable once registered with a FactoryBuilder.
type FieldParseInfo struct {
	Kind           IsoType
	DeclaredLength int
	Codec          AnyFieldCodec
}

// typeConfig holds everything the factory knows about one message type:
// the ISO header to prepend, the template message to clone fields from,
// the parse schema, and the schema's precomputed ascending index list.
type typeConfig struct {
	header     string
	template   *IsoMessage
	schema     map[int]FieldParseInfo
	schemaSort []int
}

// MessageFactory holds per-type templates, per-type parse schemas, a
// trace-number source, and a date-assignment flag. Once built it is
// read-only and safe for unlimited concurrent NewMessage, CreateResponse,
// and Parse calls; only the trace source is internally synchronized.
type MessageFactory struct {
	types       map[uint16]typeConfig
	traceSource TraceNumberSource
	assignDate  bool
	terminator  int
	charset     *Charset
}

// NewMessage allocates a message for msgType: installs the configured
// header, deep-copies every present template field, assigns a trace number
// into field 11 if a trace source is configured, and stamps field 7 with
// the current time if date assignment is enabled.
func (f *MessageFactory) NewMessage(msgType uint16) (*IsoMessage, error) {
	// An unregistered type is not a configuration error here: it yields a
	// message with an empty header and no template fields, same as a
	// registered type with no template installed.
	tc := f.types[msgType]
	m := newIsoMessage(tc.header, msgType, f.terminator, f.charset)
	if tc.template != nil {
		for i, v := range tc.template.fields {
			m.fields[i] = v.Clone()
		}
	}
	if f.traceSource != nil {
		n := f.traceSource.Next()
		if err := m.SetValue(11, fmt.Sprintf("%06d", n), NUMERIC, 6); err != nil {
			return nil, err
		}
	}
	if f.assignDate {
		if err := m.SetValue(7, FormatDate10(time.Now()), DATE10, 10); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CreateResponse builds response_type = request.Type + 0x10, applies the
// response type's template (as NewMessage would), then overlays every
// field present in request — the request's values win over the template's.
func (f *MessageFactory) CreateResponse(request *IsoMessage) (*IsoMessage, error) {
	responseType := request.Type + 0x10
	resp, err := f.NewMessage(responseType)
	if err != nil {
		return nil, err
	}
	for i, v := range request.fields {
		resp.fields[i] = v.Clone()
	}
	return resp, nil
}

// Parse decodes buf into a message: it strips headerLen header bytes, reads
// the four-hex-digit MTI, looks up the type's parse schema, decodes the
// bitmap, and walks the schema's precomputed ascending index list, invoking
// each present index's field parser at the running offset. Because the
// schema is looked up first, an unregistered type yields NoSchemaError even
// when the bitmap that follows is truncated.
func (f *MessageFactory) Parse(buf []byte, headerLen int) (*IsoMessage, error) {
	if headerLen > len(buf) {
		return nil, &TruncatedError{Offset: 0, Needed: headerLen, Have: len(buf), Section: "header"}
	}
	header := string(buf[:headerLen])
	offset := headerLen

	if offset+4 > len(buf) {
		return nil, &TruncatedError{Offset: offset, Needed: 4, Have: len(buf) - offset, Section: "message type"}
	}
	msgType, err := parseHexMTI(buf[offset : offset+4])
	if err != nil {
		return nil, &ParseError{Offset: offset, Cause: err}
	}
	offset += 4

	tc, ok := f.types[msgType]
	if !ok || tc.schema == nil {
		return nil, &NoSchemaError{Type: msgType}
	}

	bm, consumed, err := decodeBitmapHex(buf, offset)
	if err != nil {
		return nil, err
	}
	offset += consumed

	m := newIsoMessage(header, msgType, f.terminator, f.charset)
	for _, i := range tc.schemaSort {
		if i == 1 || !bm.isFieldSet(i) {
			continue
		}
		info := tc.schema[i]
		pf, err := parseFieldAt(buf, offset, i, info.Kind, info.DeclaredLength, f.charset)
		if err != nil {
			return nil, err
		}
		raw := pf.text
		if info.Kind.IsBinary() {
			raw = string(pf.binary)
		}
		if info.Codec != nil {
			iv := &IsoValue[any]{kind: info.Kind, declaredLength: info.DeclaredLength, raw: raw, anyCodec: info.Codec}
			decoded, err := info.Codec.DecodeAny(raw)
			if err != nil {
				// Best-effort: a malformed custom field keeps its raw string
				// rather than failing the whole parse.
				iv.value = raw
			} else {
				iv.value = decoded
			}
			m.fields[i] = iv
		} else if info.Kind.IsBinary() {
			iv := NewIsoValue(info.Kind, pf.binary, info.DeclaredLength)
			iv.raw = raw
			m.fields[i] = iv
		} else {
			switch info.Kind {
			case AMOUNT:
				iv, err := decodeIsoValue[Amount](info.Kind, pf.text, info.DeclaredLength, nil)
				if err != nil {
					return nil, &ParseError{Offset: offset, Field: i, Kind: info.Kind, Cause: err}
				}
				m.fields[i] = iv
			case DATE10, DATE4, DATEEXP, TIME:
				iv, err := decodeIsoValue[time.Time](info.Kind, pf.text, info.DeclaredLength, nil)
				if err != nil {
					return nil, &ParseError{Offset: offset, Field: i, Kind: info.Kind, Cause: err}
				}
				m.fields[i] = iv
			default:
				iv, err := decodeIsoValue[string](info.Kind, pf.text, info.DeclaredLength, nil)
				if err != nil {
					return nil, &ParseError{Offset: offset, Field: i, Kind: info.Kind, Cause: err}
				}
				m.fields[i] = iv
			}
		}
		offset += pf.consumed
	}
	return m, nil
}

func parseHexMTI(b []byte) (uint16, error) {
	var n uint16
	for _, r := range b {
		var v byte
		switch {
		case r >= '0' && r <= '9':
			v = r - '0'
		case r >= 'A' && r <= 'F':
			v = r - 'A' + 10
		case r >= 'a' && r <= 'f':
			v = r - 'a' + 10
		default:
			return 0, fmt.Errorf("message type byte %q is not a hex digit", string(r))
		}
		n = n<<4 | uint16(v)
	}
	return n, nil
}

// LogValue implements slog.LogValuer, summarizing the factory's
// configuration without dumping every template/schema in full.
func (f *MessageFactory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("registered_types", len(f.types)),
		slog.Bool("has_trace_source", f.traceSource != nil),
		slog.Bool("assign_date", f.assignDate),
		slog.Int("terminator", f.terminator),
	)
}

// FactoryBuilder is the configuration-phase, single-writer collaborator
// that yields an immutable MessageFactory. Structuring safety this way —
// a builder that only mutates, and a factory that is only read — moves the
// phase boundary into the type system instead of runtime locking on every
// field-map lookup.
type FactoryBuilder struct {
	types       map[uint16]typeConfig
	traceSource TraceNumberSource
	assignDate  bool
	terminator  int
	charset     *Charset
}

// NewFactoryBuilder returns a builder with no terminator and the default
// (ISO-8859-1) charset.
func NewFactoryBuilder() *FactoryBuilder {
	return &FactoryBuilder{
		types:      make(map[uint16]typeConfig),
		terminator: -1,
		charset:    DefaultCharset(),
	}
}

func (b *FactoryBuilder) typeEntry(msgType uint16) typeConfig {
	tc, ok := b.types[msgType]
	if !ok {
		tc = typeConfig{}
	}
	return tc
}

// SetISOHeader installs the header string prepended before the MTI for
// msgType.
func (b *FactoryBuilder) SetISOHeader(msgType uint16, header string) *FactoryBuilder {
	tc := b.typeEntry(msgType)
	tc.header = header
	b.types[msgType] = tc
	return b
}

// SetMessageTemplate installs the template message cloned into every
// NewMessage/CreateResponse call for msgType.
func (b *FactoryBuilder) SetMessageTemplate(msgType uint16, template *IsoMessage) *FactoryBuilder {
	tc := b.typeEntry(msgType)
	tc.template = template
	b.types[msgType] = tc
	return b
}

// SetParseMap installs the parse schema for msgType and precomputes its
// ascending index list so Parse never re-sorts per call.
func (b *FactoryBuilder) SetParseMap(msgType uint16, schema map[int]FieldParseInfo) *FactoryBuilder {
	tc := b.typeEntry(msgType)
	tc.schema = schema
	idx := make([]int, 0, len(schema))
	for i := range schema {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	tc.schemaSort = idx
	b.types[msgType] = tc
	return b
}

// SetTraceNumberGenerator installs the trace-number source used by
// NewMessage to stamp field 11.
func (b *FactoryBuilder) SetTraceNumberGenerator(src TraceNumberSource) *FactoryBuilder {
	b.traceSource = src
	return b
}

// SetAssignDate toggles whether NewMessage stamps field 7 with the current
// time.
func (b *FactoryBuilder) SetAssignDate(assign bool) *FactoryBuilder {
	b.assignDate = assign
	return b
}

// SetETX installs the single-byte terminator appended by Write; pass -1 for
// none.
func (b *FactoryBuilder) SetETX(terminator int) *FactoryBuilder {
	b.terminator = terminator
	return b
}

// SetCharset installs the character set used to encode/decode text fields.
func (b *FactoryBuilder) SetCharset(cs *Charset) *FactoryBuilder {
	b.charset = cs
	return b
}

// Build validates every installed template against its parse schema
// (structural kind/length consistency only — no business-rule validation)
// and returns an immutable MessageFactory. Build is the only place a
// ConfigurationError can surface.
func (b *FactoryBuilder) Build() (*MessageFactory, error) {
	for msgType, tc := range b.types {
		if err := validateTypeConfig(msgType, tc); err != nil {
			return nil, err
		}
	}
	types := make(map[uint16]typeConfig, len(b.types))
	for k, v := range b.types {
		types[k] = v
	}
	return &MessageFactory{
		types:       types,
		traceSource: b.traceSource,
		assignDate:  b.assignDate,
		terminator:  b.terminator,
		charset:     b.charset,
	}, nil
}
