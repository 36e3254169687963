package iso8583

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNumericEncodingPadsWithZeros(t *testing.T) {
	iv := NewIsoValue(NUMERIC, "650000", 6)
	b, err := iv.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "650000", string(b))

	iv2 := NewIsoValue(NUMERIC, "123", 6)
	b2, err := iv2.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "000123", string(b2))
}

func TestAlphaEncodingPadsWithSpaces(t *testing.T) {
	iv := NewIsoValue(ALPHA, "TERM0001", 8)
	b, err := iv.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "TERM0001", string(b))

	iv2 := NewIsoValue(ALPHA, "AB", 5)
	b2, err := iv2.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "AB   ", string(b2))
}

func TestLLVAREncoding(t *testing.T) {
	iv := NewIsoValue(LLVAR, "4111111111111111", 0)
	b, err := iv.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "164111111111111111", string(b))
}

type upperCodec struct{}

func (upperCodec) Encode(v string) (string, error) { return strings.ToUpper(v), nil }
func (upperCodec) Decode(s string) (string, error)  { return strings.ToUpper(s), nil }

type failingCodec struct{}

func (failingCodec) Encode(v string) (string, error) { return v, nil }
func (failingCodec) Decode(s string) (string, error) {
	return "", errors.New("boom")
}

func TestCustomCodecFallsBackToRawStringOnDecodeFailure(t *testing.T) {
	iv, err := decodeIsoValue[string](ALPHA, "RAWVALUE", 8, failingCodec{})
	require.NoError(t, err)
	require.Equal(t, "RAWVALUE", iv.RawString())
	require.Equal(t, "", iv.Value())
}

func TestCustomCodecAppliesOnDecode(t *testing.T) {
	iv, err := decodeIsoValue[string](ALPHA, "hello", 5, upperCodec{})
	require.NoError(t, err)
	require.Equal(t, "HELLO", iv.Value())
}

func TestFieldCloneIsIndependent(t *testing.T) {
	iv := NewIsoValue(NUMERIC, "000123", 6)
	clone := iv.Clone().(*IsoValue[string])
	clone.SetValue("000999")
	require.Equal(t, "000123", iv.Value())
	require.Equal(t, "000999", clone.Value())
}

func TestAmountEncodingRendersTwelveDigitMinorUnits(t *testing.T) {
	iv := NewIsoValue(AMOUNT, NewAmount(12, 34), 0)
	b, err := iv.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "000000001234", string(b))
}

func TestAmountDecodesToFixedPointMinorUnits(t *testing.T) {
	iv, err := decodeIsoValue[Amount](AMOUNT, "000000012345", 0, nil)
	require.NoError(t, err)
	require.Equal(t, int64(12345), iv.Value().Minor())
	require.Equal(t, "123.45", iv.Value().Decimal())
}

func TestDate10EncodesAndDecodesThroughTimeValue(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)
	iv := NewIsoValue(DATE10, ref, 0)
	b, err := iv.encode(DefaultCharset())
	require.NoError(t, err)
	require.Equal(t, "0315093000", string(b))

	decoded, err := decodeIsoValue[time.Time](DATE10, "0315093000", 0, nil)
	require.NoError(t, err)
	require.Equal(t, time.March, decoded.Value().Month())
	require.Equal(t, 15, decoded.Value().Day())
	require.Equal(t, 9, decoded.Value().Hour())
	require.Equal(t, 30, decoded.Value().Minute())
}

func TestTimeKindDecodesToTimeValue(t *testing.T) {
	decoded, err := decodeIsoValue[time.Time](TIME, "093015", 0, nil)
	require.NoError(t, err)
	require.Equal(t, 9, decoded.Value().Hour())
	require.Equal(t, 30, decoded.Value().Minute())
	require.Equal(t, 15, decoded.Value().Second())
}
