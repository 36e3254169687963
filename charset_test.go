package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCharsetRoundTripsASCII(t *testing.T) {
	cs := DefaultCharset()
	b, err := cs.Encode("HELLO123")
	require.NoError(t, err)
	s, err := cs.Decode(b)
	require.NoError(t, err)
	require.Equal(t, "HELLO123", s)
	require.Equal(t, "ISO-8859-1", cs.Name())
}

func TestUTF8CharsetPassesThroughBytes(t *testing.T) {
	cs := UTF8Charset()
	b, err := cs.Encode("héllo")
	require.NoError(t, err)
	require.Equal(t, []byte("héllo"), b)
	require.Equal(t, "UTF-8", cs.Name())
}

func TestNilCharsetIsIdentity(t *testing.T) {
	var cs *Charset
	b, err := cs.Encode("raw")
	require.NoError(t, err)
	require.Equal(t, []byte("raw"), b)
}
