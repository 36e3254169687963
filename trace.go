package iso8583

import "sync/atomic"

// TraceNumberSource supplies field 11 (the system trace audit number) to
// new_message. It is the one factory dependency that must be internally
// synchronized: every other factory state is read-only once configuration
// completes, but Next is called from every concurrent NewMessage.
type TraceNumberSource interface {
	Next() int
}

// atomicTraceNumberSource is a monotonically increasing counter that wraps
// at 10^6, the default TraceNumberSource implementation.
type atomicTraceNumberSource struct {
	counter uint64
}

// NewTraceNumberSource returns a TraceNumberSource whose first Next() call
// returns start (1 if start is 0 or negative), wrapping back to 1 after
// reaching 999999.
func NewTraceNumberSource(start int) TraceNumberSource {
	t := &atomicTraceNumberSource{}
	if start > 1 {
		atomic.StoreUint64(&t.counter, uint64(start-1))
	}
	return t
}

func (t *atomicTraceNumberSource) Next() int {
	for {
		cur := atomic.LoadUint64(&t.counter)
		next := cur + 1
		if next > 999999 {
			next = 1
		}
		if atomic.CompareAndSwapUint64(&t.counter, cur, next) {
			return int(next)
		}
	}
}
