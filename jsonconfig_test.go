package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSONConfig = `{
  "types": {
    "0200": {
      "header": "HDR0",
      "template": {
        "3": {"kind": "NUMERIC", "declared_length": 6, "value": "000000"}
      },
      "schema": {
        "3": {"kind": "NUMERIC", "declared_length": 6},
        "4": {"kind": "NUMERIC", "declared_length": 12},
        "11": {"kind": "NUMERIC", "declared_length": 6}
      }
    }
  },
  "assign_date": true,
  "terminator": 0,
  "charset": "UTF-8"
}`

func TestLoadFactoryConfigBuildsUsableFactory(t *testing.T) {
	fb, err := LoadFactoryConfig([]byte(sampleJSONConfig))
	require.NoError(t, err)

	f, err := fb.Build()
	require.NoError(t, err)

	m, err := f.NewMessage(0x0200)
	require.NoError(t, err)

	fld, ok := m.GetField(3)
	require.True(t, ok)
	require.Equal(t, "000000", fld.(*IsoValue[string]).Value())

	require.True(t, m.HasField(7)) // assign_date stamps the date field
}

func TestLoadFactoryConfigRejectsUnknownKind(t *testing.T) {
	bad := `{"types": {"0200": {"schema": {"3": {"kind": "NOPE"}}}}}`
	_, err := LoadFactoryConfig([]byte(bad))
	require.Error(t, err)
}

func TestLoadFactoryConfigRejectsBadMTIKey(t *testing.T) {
	bad := `{"types": {"ZZZZ": {}}}`
	_, err := LoadFactoryConfig([]byte(bad))
	require.Error(t, err)
}
