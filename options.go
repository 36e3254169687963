package iso8583

// FactoryOption is a functional option applied to a FactoryBuilder, the
// same functional-options shape iso8583fx uses for ProcessorOption.
type FactoryOption func(*FactoryBuilder)

// WithCharset installs the character set a built factory will use to
// encode/decode text fields. DefaultCharset() (ISO-8859-1) is used if this
// option is never applied.
func WithCharset(cs *Charset) FactoryOption {
	return func(b *FactoryBuilder) {
		b.SetCharset(cs)
	}
}

// WithTraceNumberGenerator installs the trace-number source.
func WithTraceNumberGenerator(src TraceNumberSource) FactoryOption {
	return func(b *FactoryBuilder) {
		b.SetTraceNumberGenerator(src)
	}
}

// WithAssignDate toggles field-7 date stamping on NewMessage.
func WithAssignDate(assign bool) FactoryOption {
	return func(b *FactoryBuilder) {
		b.SetAssignDate(assign)
	}
}

// WithETX installs the single-byte terminator appended by Write.
func WithETX(terminator int) FactoryOption {
	return func(b *FactoryBuilder) {
		b.SetETX(terminator)
	}
}

// WithType registers the header, template, and parse schema for one
// message type in a single option.
func WithType(msgType uint16, header string, template *IsoMessage, schema map[int]FieldParseInfo) FactoryOption {
	return func(b *FactoryBuilder) {
		b.SetISOHeader(msgType, header)
		if template != nil {
			b.SetMessageTemplate(msgType, template)
		}
		if schema != nil {
			b.SetParseMap(msgType, schema)
		}
	}
}

// NewFactory applies opts to a fresh FactoryBuilder and builds it in one
// call, for callers who have no need to hold the builder.
func NewFactory(opts ...FactoryOption) (*MessageFactory, error) {
	b := NewFactoryBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}
