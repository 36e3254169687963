// Package iso8583fx provides bounded-concurrency batch and streaming
// decode helpers on top of a *iso8583.MessageFactory. The factory itself is
// already safe for unlimited concurrent Parse calls once built; this
// package exists to bound how many of those calls run at once and to give
// callers a batch/stream shape instead of hand-rolled goroutine fan-out.
package iso8583fx

import (
	"context"
	"fmt"
	"sync"

	"github.com/cardrail/iso8583"
)

// Processor runs a *iso8583.MessageFactory's Parse concurrently across
// many raw messages, bounding the number of goroutines in flight.
type Processor struct {
	factory      *iso8583.MessageFactory
	headerLen    int
	concurrency  int
	errorHandler func(error)
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency bounds the number of messages decoded in parallel.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler installs a callback invoked for every decode failure,
// in addition to the error being reported through the normal return value.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}

// NewProcessor returns a Processor decoding with factory, assuming each raw
// message carries a fixed headerLen-byte header before its MTI.
func NewProcessor(factory *iso8583.MessageFactory, headerLen int, opts ...ProcessorOption) *Processor {
	p := &Processor{
		factory:      factory,
		headerLen:    headerLen,
		concurrency:  4,
		errorHandler: func(error) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result pairs a decoded message with the index of the input it came from,
// so callers can recover ordering after concurrent processing.
type Result struct {
	Index   int
	Message *iso8583.IsoMessage
	Err     error
}

// ProcessBatch decodes every entry in raw concurrently, bounded by the
// configured concurrency, and returns one Result per input in input order.
// It does not stop early on a per-message decode failure; ctx cancellation
// is the only thing that aborts outstanding work.
func (p *Processor) ProcessBatch(ctx context.Context, raw [][]byte) ([]Result, error) {
	results := make([]Result, len(raw))
	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for i, data := range raw {
		select {
		case <-ctx.Done():
			wg.Wait()
			return results, ctx.Err()
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, msgData []byte) {
			defer wg.Done()
			defer func() { <-sem }()

			m, err := p.factory.Parse(msgData, p.headerLen)
			if err != nil {
				err = fmt.Errorf("message %d: %w", idx, err)
				p.errorHandler(err)
			}
			results[idx] = Result{Index: idx, Message: m, Err: err}
		}(i, data)
	}

	wg.Wait()
	return results, nil
}

// ProcessStream decodes messages arriving on input and sends each Result to
// output, bounded by the configured concurrency. It returns when input is
// closed and every in-flight decode has been sent, or when ctx is
// cancelled.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan []byte, output chan<- Result) error {
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)
	idx := 0

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()

		case data, ok := <-input:
			if !ok {
				wg.Wait()
				return nil
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(i int, msgData []byte) {
				defer wg.Done()
				defer func() { <-sem }()

				m, err := p.factory.Parse(msgData, p.headerLen)
				if err != nil {
					err = fmt.Errorf("message %d: %w", i, err)
					p.errorHandler(err)
				}
				select {
				case output <- Result{Index: i, Message: m, Err: err}:
				case <-ctx.Done():
				}
			}(idx, data)
			idx++
		}
	}
}
