package iso8583

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorUnwrapsToCause(t *testing.T) {
	cause := errors.New("bad digit")
	err := &ParseError{Offset: 10, Field: 3, Kind: NUMERIC, Cause: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "field 3")
}

func TestTruncatedErrorMessageIncludesSection(t *testing.T) {
	err := &TruncatedError{Offset: 4, Needed: 16, Have: 10, Section: "bitmap"}
	require.Contains(t, err.Error(), "bitmap")
}

func TestNoSchemaErrorMessage(t *testing.T) {
	err := &NoSchemaError{Type: 0x0200}
	require.Contains(t, err.Error(), "0200")
}

func TestConfigurationErrorWithAndWithoutField(t *testing.T) {
	withField := &ConfigurationError{Type: 0x0200, Field: 4, Reason: "bad"}
	require.Contains(t, withField.Error(), "field 4")

	withoutField := &ConfigurationError{Type: 0x0200, Reason: "bad"}
	require.NotContains(t, withoutField.Error(), "field 0")
}

func TestFieldErrorUnwraps(t *testing.T) {
	cause := errors.New("encoding failed")
	err := &FieldError{Field: 2, Err: cause}
	require.ErrorIs(t, err, cause)
}
