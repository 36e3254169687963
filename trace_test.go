package iso8583

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceNumberSourceStartsAtRequestedValue(t *testing.T) {
	src := NewTraceNumberSource(5)
	require.Equal(t, 5, src.Next())
	require.Equal(t, 6, src.Next())
}

func TestTraceNumberSourceDefaultsToOne(t *testing.T) {
	src := NewTraceNumberSource(0)
	require.Equal(t, 1, src.Next())
}

func TestTraceNumberSourceWrapsAfterMax(t *testing.T) {
	src := NewTraceNumberSource(999999)
	require.Equal(t, 999999, src.Next())
	require.Equal(t, 1, src.Next())
}

func TestTraceNumberSourceConcurrentNextNeverRepeats(t *testing.T) {
	src := NewTraceNumberSource(1)
	const n = 200
	seen := make([]int, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			seen[idx] = src.Next()
		}(i)
	}
	wg.Wait()

	unique := make(map[int]bool, n)
	for _, v := range seen {
		unique[v] = true
	}
	require.Len(t, unique, n)
}
