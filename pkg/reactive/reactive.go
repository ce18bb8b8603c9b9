package reactive

import (
	"sync"
)

// Dependency is anything a Computed can be re-evaluated against.
type Dependency interface {
	// OnChange registers fn to be called after the dependency changed.
	// The returned function removes the registration; it is idempotent.
	OnChange(fn func()) (cancel func())
}

// Readable is a reactive value that can be read and observed.
type Readable[T any] interface {
	Dependency

	// Get returns the current value.
	Get() T

	// Subscribe registers fn to receive every new value.
	// The returned function removes the subscription; it is idempotent.
	Subscribe(fn func(T)) (cancel func())
}

// listeners is a registry of callbacks keyed by registration order.
// It is not safe for concurrent use on its own; owners guard it.
type listeners[T any] struct {
	nextID uint64
	fns    map[uint64]func(T)
}

func (l *listeners[T]) add(fn func(T)) uint64 {
	if l.fns == nil {
		l.fns = make(map[uint64]func(T))
	}
	l.nextID++
	l.fns[l.nextID] = fn
	return l.nextID
}

func (l *listeners[T]) remove(id uint64) {
	delete(l.fns, id)
}

func (l *listeners[T]) snapshot() []func(T) {
	if len(l.fns) == 0 {
		return nil
	}
	out := make([]func(T), 0, len(l.fns))
	for _, fn := range l.fns {
		out = append(out, fn)
	}
	return out
}

func notify[T any](fns []func(T), v T) {
	for _, fn := range fns {
		fn(v)
	}
}

// Value is a writable reactive value. All methods are safe for concurrent use.
//
// Deliveries are serialised: concurrent writers notify subscribers in the
// order their values were stored. A subscriber must not Set the Value that is
// notifying it.
type Value[T comparable] struct {
	pub  sync.Mutex
	mu   sync.RWMutex
	val  T
	subs listeners[T]
}

// NewValue creates a Value holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{val: v}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set stores val and notifies subscribers.
// Setting the value it already holds is a no-op.
func (v *Value[T]) Set(val T) {
	v.pub.Lock()
	defer v.pub.Unlock()

	v.mu.Lock()
	if v.val == val {
		v.mu.Unlock()
		return
	}
	v.val = val
	fns := v.subs.snapshot()
	v.mu.Unlock()

	// Readers only need mu, so callbacks may Get this value.
	notify(fns, val)
}

// Subscribe registers fn to receive every new value.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	v.mu.Lock()
	id := v.subs.add(fn)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			v.subs.remove(id)
			v.mu.Unlock()
		})
	}
}

// OnChange implements Dependency.
func (v *Value[T]) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return v.Subscribe(func(T) { fn() })
}

// Const returns a Readable that never changes.
func Const[T any](v T) Readable[T] {
	return constant[T]{val: v}
}

type constant[T any] struct {
	val T
}

func (c constant[T]) Get() T                   { return c.val }
func (c constant[T]) Subscribe(func(T)) func() { return func() {} }
func (c constant[T]) OnChange(func()) func()   { return func() {} }
