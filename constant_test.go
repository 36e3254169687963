package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaIsStructurallyValid(t *testing.T) {
	require.NoError(t, validateTypeConfig(0x0200, typeConfig{schema: DefaultSchema}))
}

func TestDefaultSchemaCoversCommonFields(t *testing.T) {
	for _, i := range []int{2, 3, 4, 11, 41, 55, 128} {
		_, ok := DefaultSchema[i]
		require.True(t, ok, "field %d should be present in the default schema", i)
	}
}
