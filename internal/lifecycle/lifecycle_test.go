package lifecycle_test

import (
	"testing"
	"time"

	"github.com/billforge/billforge/internal/lifecycle"
)

func TestCoordinator_StartupOrder(t *testing.T) {
	lc := lifecycle.New()

	var order []int
	lc.OnStartup(func() { order = append(order, 1) })
	lc.OnStartup(func() { order = append(order, 2) })
	lc.OnStartup(func() { order = append(order, 3) })

	if lc.Ready() {
		t.Error("Ready() = true before startup")
	}

	lc.WaitForStartup()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("startup order = %v, want [1 2 3]", order)
	}
	if !lc.Ready() {
		t.Error("Ready() = false after startup")
	}
}

func TestCoordinator_ShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	ran := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		close(ran)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case <-ran:
	default:
		t.Error("shutdown hook did not run")
	}
}

func TestCoordinator_ShutdownCancelsContext(t *testing.T) {
	lc := lifecycle.New()

	if err := lc.Context().Err(); err != nil {
		t.Fatalf("context cancelled before shutdown: %v", err)
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if lc.Context().Err() == nil {
		t.Error("context not cancelled after shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() { <-release })
	defer close(release)

	if err := lc.Shutdown(10 * time.Millisecond); err == nil {
		t.Error("Shutdown() = nil, want timeout error")
	}
}
