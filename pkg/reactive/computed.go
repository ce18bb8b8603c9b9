package reactive

import (
	"sync"
)

// Computed is a value derived from one or more dependencies.
// It is evaluated once on construction and again, synchronously, every time a
// dependency reports a change. All methods are safe for concurrent use.
// Like Value, it delivers new results to subscribers one at a time in the
// order they were derived.
type Computed[T comparable] struct {
	fn func() T

	pub     sync.Mutex
	mu      sync.RWMutex
	val     T
	subs    listeners[T]
	cancels []func()
	stopped bool
}

// NewComputed creates a Computed evaluating fn against deps.
// Nil dependencies are ignored.
func NewComputed[T comparable](fn func() T, deps ...Dependency) *Computed[T] {
	c := &Computed[T]{fn: fn}
	c.val = fn()

	for _, dep := range deps {
		if dep == nil {
			continue
		}
		c.cancels = append(c.cancels, dep.OnChange(c.recompute))
	}

	return c
}

// Get returns the latest derived value.
func (c *Computed[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Subscribe registers fn to receive every new derived value.
// fn is not called when a dependency change leaves the result unchanged.
func (c *Computed[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	id := c.subs.add(fn)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			c.subs.remove(id)
			c.mu.Unlock()
		})
	}
}

// OnChange implements Dependency, so computed values can be chained.
func (c *Computed[T]) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return c.Subscribe(func(T) { fn() })
}

// Refresh re-evaluates fn and reports whether the result changed.
func (c *Computed[T]) Refresh() bool {
	return c.recomputeAndReport()
}

// Stop detaches the computed value from its dependencies. The last derived
// value stays readable. Stop is idempotent.
func (c *Computed[T]) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	cancels := c.cancels
	c.cancels = nil
	c.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (c *Computed[T]) recompute() {
	c.recomputeAndReport()
}

func (c *Computed[T]) recomputeAndReport() bool {
	c.pub.Lock()
	defer c.pub.Unlock()

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return false
	}

	next := c.fn()
	if next == c.val {
		c.mu.Unlock()
		return false
	}
	c.val = next
	fns := c.subs.snapshot()
	c.mu.Unlock()

	notify(fns, next)
	return true
}
