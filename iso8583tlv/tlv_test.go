package iso8583tlv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrimitiveTag(t *testing.T) {
	// tag 9F02, length 06, value 000000012345
	buf := []byte{0x9F, 0x02, 0x06, 0x00, 0x00, 0x00, 0x01, 0x23, 0x45}
	elems, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.Equal(t, []byte{0x9F, 0x02}, elems[0].Tag)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01, 0x23, 0x45}, elems[0].Value)
}

func TestParseConstructedTagWithChildren(t *testing.T) {
	child := []byte{0x9F, 0x02, 0x02, 0xAA, 0xBB}
	var parentLen byte = byte(len(child))
	buf := append([]byte{0xE1, parentLen}, child...)

	elems, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.True(t, isConstructed(elems[0].Tag[0]))
	require.Len(t, elems[0].Children, 1)
	require.Equal(t, []byte{0xAA, 0xBB}, elems[0].Children[0].Value)
}

func TestParseLongFormLength(t *testing.T) {
	value := make([]byte, 200)
	for i := range value {
		value[i] = byte(i)
	}
	buf := append([]byte{0x5F, 0x20, 0x81, 0xC8}, value...)

	elems, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.Equal(t, value, elems[0].Value)
}

func TestParseMultipleTopLevelElements(t *testing.T) {
	buf := []byte{
		0x9F, 0x02, 0x02, 0x01, 0x02,
		0x9F, 0x03, 0x01, 0x09,
	}
	elems, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, elems, 2)
}

func TestParseRejectsLengthBeyondBuffer(t *testing.T) {
	buf := []byte{0x9F, 0x02, 0x10, 0x01}
	_, err := Parse(buf)
	require.Error(t, err)
}

func TestPackRoundTripsParse(t *testing.T) {
	original := []TLV{
		{Tag: []byte{0x9F, 0x02}, Value: []byte{0x00, 0x00, 0x00, 0x01, 0x23, 0x45}},
		{Tag: []byte{0xE1}, Children: []TLV{
			{Tag: []byte{0x9F, 0x03}, Value: []byte{0x09}},
		}},
	}
	packed, err := Pack(original)
	require.NoError(t, err)

	reparsed, err := Parse(packed)
	require.NoError(t, err)
	require.Equal(t, original, reparsed)
}

func TestPackLongFormLength(t *testing.T) {
	out := packLength(300)
	require.Equal(t, byte(0x82), out[0])
	length, consumed, err := readLength(out, 0)
	require.NoError(t, err)
	require.Equal(t, 300, length)
	require.Equal(t, len(out), consumed)
}
