package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTypeConfigAcceptsIntrinsicLengthMismatchOfZero(t *testing.T) {
	tc := typeConfig{schema: map[int]FieldParseInfo{
		4: {Kind: AMOUNT}, // DeclaredLength 0 is fine: AMOUNT has an intrinsic length
	}}
	require.NoError(t, validateTypeConfig(0x0200, tc))
}

func TestValidateTypeConfigRejectsConflictingIntrinsicLength(t *testing.T) {
	tc := typeConfig{schema: map[int]FieldParseInfo{
		4: {Kind: AMOUNT, DeclaredLength: 10},
	}}
	err := validateTypeConfig(0x0200, tc)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateTypeConfigRejectsTemplateSchemaKindMismatch(t *testing.T) {
	tmpl := newIsoMessage("", 0x0200, -1, DefaultCharset())
	require.NoError(t, tmpl.SetValue(3, "000000", NUMERIC, 6))

	tc := typeConfig{
		template: tmpl,
		schema: map[int]FieldParseInfo{
			3: {Kind: ALPHA, DeclaredLength: 6},
		},
	}
	err := validateTypeConfig(0x0200, tc)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateTypeConfigIgnoresTemplateFieldsAbsentFromSchema(t *testing.T) {
	tmpl := newIsoMessage("", 0x0200, -1, DefaultCharset())
	require.NoError(t, tmpl.SetValue(99, "X", ALPHA, 1))

	tc := typeConfig{template: tmpl, schema: map[int]FieldParseInfo{}}
	require.NoError(t, validateTypeConfig(0x0200, tc))
}
