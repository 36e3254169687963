package iso8583

// Builder is a fluent convenience layer over IsoMessage.SetField for
// hand-built ad hoc messages (fixtures, tests, tools) — distinct from
// MessageFactory.NewMessage, which builds from a registered template.
type Builder struct {
	msg    *IsoMessage
	errors []error
}

// NewBuilder starts a Builder for msgType with no header and no
// terminator, using cs (DefaultCharset() if nil).
func NewBuilder(msgType uint16, cs *Charset) *Builder {
	if cs == nil {
		cs = DefaultCharset()
	}
	return &Builder{msg: newIsoMessage("", msgType, -1, cs)}
}

// Header sets the message header string.
func (b *Builder) Header(header string) *Builder {
	b.msg.Header = header
	return b
}

// Terminator sets the single trailing byte appended by Write.
func (b *Builder) Terminator(t int) *Builder {
	b.msg.Terminator = t
	return b
}

// Field installs field i of kind k with raw text/binary payload encoded as
// an IsoValue; declaredLength governs fixed-width kinds.
func (b *Builder) Field(i int, k IsoType, raw string, declaredLength int) *Builder {
	if err := b.msg.SetValue(i, raw, k, declaredLength); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// BinaryField installs a BINARY/LLBIN/LLLBIN field from raw bytes.
func (b *Builder) BinaryField(i int, k IsoType, raw []byte, declaredLength int) *Builder {
	if err := b.msg.SetField(i, NewIsoValue(k, raw, declaredLength)); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// PAN is shorthand for an LLVAR field 2.
func (b *Builder) PAN(pan string) *Builder {
	return b.Field(2, LLVAR, pan, 0)
}

// ProcessingCode is shorthand for a NUMERIC field 3 of length 6.
func (b *Builder) ProcessingCode(code string) *Builder {
	return b.Field(3, NUMERIC, code, 6)
}

// Amount is shorthand for an AMOUNT field 4.
func (b *Builder) Amount(amount string) *Builder {
	return b.Field(4, AMOUNT, amount, 12)
}

// STAN is shorthand for the NUMERIC field 11 trace number.
func (b *Builder) STAN(stan string) *Builder {
	return b.Field(11, NUMERIC, stan, 6)
}

// Build returns the assembled message, or the first error recorded by a
// failed Field/BinaryField call.
func (b *Builder) Build() (*IsoMessage, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	return b.msg, nil
}

// MustBuild panics on the first recorded error instead of returning it;
// the one place in this package a panic is allowed to cross an exported
// boundary.
func (b *Builder) MustBuild() *IsoMessage {
	if len(b.errors) > 0 {
		panic(b.errors[0])
	}
	return b.msg
}
