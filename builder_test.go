package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderAssemblesShorthandFields(t *testing.T) {
	m, err := NewBuilder(0x0200, nil).
		Header("HDR0").
		PAN("4111111111111111").
		ProcessingCode("000000").
		Amount("000000012345").
		STAN("000001").
		Build()
	require.NoError(t, err)

	pan, ok := m.GetField(2)
	require.True(t, ok)
	require.Equal(t, "4111111111111111", pan.(*IsoValue[string]).Value())

	stan, ok := m.GetField(11)
	require.True(t, ok)
	require.Equal(t, "000001", stan.(*IsoValue[string]).Value())
}

func TestBuilderReturnsFirstRecordedError(t *testing.T) {
	_, err := NewBuilder(0x0200, nil).
		Field(1, NUMERIC, "1", 1). // field 1 is reserved
		Build()
	require.ErrorIs(t, err, ErrFieldOneReserved)
}

func TestBuilderMustBuildPanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		NewBuilder(0x0200, nil).Field(1, NUMERIC, "1", 1).MustBuild()
	})
}

func TestBuilderBinaryField(t *testing.T) {
	m, err := NewBuilder(0x0200, nil).
		BinaryField(52, BINARY, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 4).
		Build()
	require.NoError(t, err)

	pin, ok := m.GetField(52)
	require.True(t, ok)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, pin.(*IsoValue[[]byte]).Value())
}
