// Package ready provides a one-shot readiness barrier: work registered
// before the barrier resolves is queued and runs once, in order, when it
// does; work registered afterwards runs immediately.
package ready

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
)

// ErrNotReady is returned by Wait when the context ends first.
var ErrNotReady = errors.New("not ready")

// Gate is a one-shot future holding a value of type T and a FIFO list of
// continuations. The zero value is not usable; call New.
type Gate[T any] struct {
	mu       sync.Mutex
	resolved bool
	ready    bool
	value    T
	pending  []func(T)
	done     chan struct{}
}

func New[T any]() *Gate[T] {
	return &Gate[T]{done: make(chan struct{})}
}

// OnReady runs fn with the resolved value. Before the gate is ready fn is
// queued; afterwards it runs synchronously on the calling goroutine.
func (g *Gate[T]) OnReady(fn func(T)) {
	g.mu.Lock()
	if !g.ready {
		g.pending = append(g.pending, fn)
		g.mu.Unlock()
		return
	}
	v := g.value
	g.mu.Unlock()
	invoke(fn, v, -1)
}

// Resolve stores v and drains the queued callbacks in registration order,
// including any queued while draining. Only the first call has an effect;
// later calls return false.
func (g *Gate[T]) Resolve(v T) bool {
	g.mu.Lock()
	if g.resolved {
		g.mu.Unlock()
		obs.Logger.Warn("ready_resolve_ignored")
		return false
	}
	g.resolved = true
	g.value = v
	g.mu.Unlock()

	n := 0
	for {
		g.mu.Lock()
		batch := g.pending
		g.pending = nil
		if len(batch) == 0 {
			g.ready = true
			g.mu.Unlock()
			break
		}
		g.mu.Unlock()
		for _, fn := range batch {
			invoke(fn, v, n)
			n++
		}
	}
	close(g.done)
	obs.Logger.Info("ready_resolved", "callbacks", n)
	return true
}

// Ready reports whether the gate has resolved and drained its queue.
func (g *Gate[T]) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Value returns the resolved value once the gate is ready.
func (g *Gate[T]) Value() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.ready {
		var zero T
		return zero, false
	}
	return g.value, true
}

// Done is closed once the gate is ready.
func (g *Gate[T]) Done() <-chan struct{} { return g.done }

// Wait blocks until the gate is ready or ctx ends.
func (g *Gate[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-g.done:
		v, _ := g.Value()
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrNotReady, ctx.Err())
	}
}

// invoke isolates a callback so a panic is logged instead of unwinding the
// drain loop.
func invoke[T any](fn func(T), v T, index int) {
	defer func() {
		if r := recover(); r != nil {
			obs.Logger.Error("ready_callback_panic", "index", index, "panic", fmt.Sprint(r))
		}
	}()
	fn(v)
}
