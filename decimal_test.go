package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountParseAndFormat(t *testing.T) {
	a, err := ParseAmount("000000001000")
	require.NoError(t, err)
	require.Equal(t, int64(1000), a.Minor())
	require.Equal(t, "10.00", a.Decimal())
	require.Equal(t, "000000001000", a.String())
}

func TestAmountRejectsNonDigits(t *testing.T) {
	_, err := ParseAmount("0000ABCD1000")
	require.Error(t, err)
}

func TestNewAmount(t *testing.T) {
	a := NewAmount(12, 34)
	require.Equal(t, int64(1234), a.Minor())
	require.Equal(t, "12.34", a.Decimal())
}

func TestFormatNumericPadsAndParseNumericReadsBack(t *testing.T) {
	require.Equal(t, "000123", formatNumeric(123, 6))
	n, err := parseNumeric("000123")
	require.NoError(t, err)
	require.Equal(t, int64(123), n)
}
