package reactive

import (
	"context"
	"sync"
	"sync/atomic"
)

// Watcher delivers the values of a Readable over a buffered channel.
// When the buffer is full new values are dropped rather than blocking the
// writer that triggered them.
type Watcher[T any] struct {
	ch      chan T
	done    chan struct{}
	cancel  func()
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

// Watch subscribes to src and returns a Watcher. The watcher is closed when
// ctx is cancelled or Close is called. A minimum buffer size of 1 is enforced.
func Watch[T any](ctx context.Context, src Readable[T], buffer int) *Watcher[T] {
	w := &Watcher[T]{
		ch:   make(chan T, max(buffer, 1)),
		done: make(chan struct{}),
	}
	w.cancel = src.Subscribe(w.send)

	// Auto-cleanup on context cancellation
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = w.Close()
			case <-w.done:
			}
		}()
	}

	return w
}

// C returns the channel values are delivered on. It is closed by Close.
func (w *Watcher[T]) C() <-chan T {
	return w.ch
}

// Dropped returns how many values were discarded because the buffer was full.
func (w *Watcher[T]) Dropped() uint64 {
	return w.dropped.Load()
}

// Close unsubscribes from the source and closes the channel.
// Close is idempotent and safe to call multiple times.
func (w *Watcher[T]) Close() error {
	w.once.Do(func() {
		w.cancel()

		w.mu.Lock()
		w.closed = true
		close(w.ch)
		close(w.done)
		w.mu.Unlock()
	})
	return nil
}

func (w *Watcher[T]) send(v T) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return
	}

	select {
	case w.ch <- v:
	default:
		w.dropped.Add(1)
	}
}
