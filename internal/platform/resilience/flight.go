package resilience

import (
	"context"
	"sync"
)

// Flight collapses concurrent calls sharing a key into one execution.
// Results are handed to every waiter and then dropped; nothing is retained.
type Flight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Do runs fn for key unless a call for key is already in flight, in which case it waits for that
// call's result.
//
// fn runs on its own goroutine with a context that keeps the values of the first caller's ctx but
// none of its cancellation, so no caller can abort the call for the others. fn must bound its own
// duration. Every caller, the first one included, returns ctx.Err() when its ctx ends before the
// call completes. shared reports whether the call had more than one caller.
func (g *Flight[T]) Do(ctx context.Context, key string, fn func(context.Context) (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall[T])
	}
	c, ok := g.calls[key]
	if ok {
		c.dups++
	} else {
		c = &flightCall[T]{done: make(chan struct{})}
		g.calls[key] = c
		go g.run(context.WithoutCancel(ctx), key, c, fn)
	}
	g.mu.Unlock()

	select {
	case <-c.done:
		return c.val, c.err, c.dups > 0
	case <-ctx.Done():
		var zero T
		g.mu.Lock()
		shared = c.dups > 0
		g.mu.Unlock()
		return zero, ctx.Err(), shared
	}
}

func (g *Flight[T]) run(ctx context.Context, key string, c *flightCall[T], fn func(context.Context) (T, error)) {
	c.val, c.err = fn(ctx)

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)
}

// InFlight returns the number of keys currently executing.
func (g *Flight[T]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
