// Package lifecycle coordinates subsystem startup and shutdown ordering.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Coordinator sequences startup hooks and fans out shutdown signals to
// registered subsystems. Shutdown hooks typically block on Context().Done()
// before performing their cleanup.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	startup  []func()
	shutdown []func()
	ready    atomic.Bool
}

// New creates a Coordinator with an active lifecycle context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the lifecycle context, cancelled when shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// Ready reports whether startup has completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnStartup registers a function to run during WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, fn)
}

// OnShutdown registers a function to run when shutdown begins. Registered
// functions run concurrently; each should block on Context().Done().
func (c *Coordinator) OnShutdown(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = append(c.shutdown, fn)
}

// WaitForStartup runs all registered startup functions in registration order
// and marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.mu.Lock()
	fns := make([]func(), len(c.startup))
	copy(fns, c.startup)
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}

	c.ready.Store(true)
}

// Shutdown cancels the lifecycle context and waits for all shutdown hooks to
// complete within the timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.mu.Lock()
	fns := make([]func(), len(c.shutdown))
	copy(fns, c.shutdown)
	c.mu.Unlock()

	var wg sync.WaitGroup
	done := make(chan struct{})

	for _, fn := range fns {
		wg.Add(1)
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(fn)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	c.cancel()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
