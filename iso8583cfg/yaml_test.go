package iso8583cfg

import (
	"testing"

	"github.com/cardrail/iso8583"
	"github.com/stretchr/testify/require"
)

const sampleYAMLConfig = `
types:
  "0200":
    header: HDR0
    template:
      "3":
        kind: NUMERIC
        declared_length: 6
        value: "000000"
    schema:
      "3":
        kind: NUMERIC
        declared_length: 6
      "4":
        kind: NUMERIC
        declared_length: 12
      "11":
        kind: NUMERIC
        declared_length: 6
assign_date: false
terminator: 0
charset: ISO-8859-1
`

func TestLoadBuildsUsableFactory(t *testing.T) {
	fb, err := Load([]byte(sampleYAMLConfig))
	require.NoError(t, err)

	f, err := fb.Build()
	require.NoError(t, err)

	m, err := f.NewMessage(0x0200)
	require.NoError(t, err)
	require.Equal(t, "HDR0", m.Header)

	fld, ok := m.GetField(3)
	require.True(t, ok)
	require.Equal(t, "000000", fld.(*iso8583.IsoValue[string]).Value())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("types: [not a map"))
	require.Error(t, err)
}
