package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFactoryAppliesOptionsInOrder(t *testing.T) {
	schema := map[int]FieldParseInfo{
		3: {Kind: NUMERIC, DeclaredLength: 6},
	}
	f, err := NewFactory(
		WithType(0x0200, "HDR0", nil, schema),
		WithAssignDate(true),
		WithETX(0x03),
		WithCharset(UTF8Charset()),
	)
	require.NoError(t, err)

	m, err := f.NewMessage(0x0200)
	require.NoError(t, err)
	require.True(t, m.HasField(7))
	require.Equal(t, 0x03, m.Terminator)
}

func TestWithTraceNumberGeneratorIsApplied(t *testing.T) {
	f, err := NewFactory(
		WithType(0x0200, "HDR0", nil, map[int]FieldParseInfo{11: {Kind: NUMERIC, DeclaredLength: 6}}),
		WithTraceNumberGenerator(NewTraceNumberSource(42)),
	)
	require.NoError(t, err)

	m, err := f.NewMessage(0x0200)
	require.NoError(t, err)
	fld, ok := m.GetField(11)
	require.True(t, ok)
	require.Equal(t, "000042", fld.(*IsoValue[string]).Value())
}
