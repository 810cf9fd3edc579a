// Package writebehind provides a keyed, trailing-edge coalescing write buffer.
// Each write replaces the pending value for its key and restarts the key's
// inactivity window; the flush function runs once the window elapses without
// further writes. Only the latest value per key is ever flushed.
package writebehind

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Flusher persists the coalesced value for a key.
type Flusher[K comparable, V any] func(ctx context.Context, key K, value V) error

type entry[V any] struct {
	value V
	timer *time.Timer
}

// Buffer accumulates the latest value per key and flushes after a period of
// write inactivity.
type Buffer[K comparable, V any] struct {
	mu      sync.Mutex
	window  time.Duration
	flush   Flusher[K, V]
	logger  *slog.Logger
	pending map[K]*entry[V]
	closed  bool
}

// New creates a Buffer with the given inactivity window and flush function.
func New[K comparable, V any](window time.Duration, flush Flusher[K, V], logger *slog.Logger) *Buffer[K, V] {
	return &Buffer[K, V]{
		window:  window,
		flush:   flush,
		logger:  logger.With("system", "writebehind"),
		pending: make(map[K]*entry[V]),
	}
}

// Write records the value for the key, replacing any pending value and
// restarting the key's inactivity window. Writes after Close flush
// synchronously.
func (b *Buffer[K, V]) Write(key K, value V) {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		if err := b.flush(context.Background(), key, value); err != nil {
			b.logger.Error("flush after close failed", "error", err)
		}
		return
	}

	if e, ok := b.pending[key]; ok {
		e.value = value
		e.timer.Reset(b.window)
		b.mu.Unlock()
		return
	}

	e := &entry[V]{value: value}
	e.timer = time.AfterFunc(b.window, func() { b.fire(key, e) })
	b.pending[key] = e
	b.mu.Unlock()
}

// Cancel discards any pending value for the key without flushing it and
// reports whether a value was pending.
func (b *Buffer[K, V]) Cancel(key K) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.pending[key]
	if ok {
		e.timer.Stop()
		delete(b.pending, key)
	}
	return ok
}

// Pending returns the number of keys awaiting flush.
func (b *Buffer[K, V]) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// FlushAll synchronously flushes every pending key and stops its timer.
// It returns the combined errors of any failed flushes.
func (b *Buffer[K, V]) FlushAll(ctx context.Context) error {
	b.mu.Lock()
	drained := make(map[K]V, len(b.pending))
	for key, e := range b.pending {
		e.timer.Stop()
		drained[key] = e.value
	}
	b.pending = make(map[K]*entry[V])
	b.mu.Unlock()

	var errs []error
	for key, value := range drained {
		if err := b.flush(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close flushes all pending values and puts the buffer into write-through
// mode, where subsequent writes flush immediately.
func (b *Buffer[K, V]) Close(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return b.FlushAll(ctx)
}

func (b *Buffer[K, V]) fire(key K, e *entry[V]) {
	b.mu.Lock()
	cur, ok := b.pending[key]
	if !ok || cur != e {
		b.mu.Unlock()
		return
	}
	value := cur.value
	delete(b.pending, key)
	b.mu.Unlock()

	if err := b.flush(context.Background(), key, value); err != nil {
		b.logger.Error("coalesced flush failed", "error", err)
	}
}
