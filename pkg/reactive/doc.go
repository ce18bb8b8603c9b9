// Package reactive provides minimal reactive state: writable values, values
// derived from them, and channel-based watchers.
//
// Propagation is synchronous. Setting a Value notifies its subscribers in the
// caller's goroutine; a Computed re-evaluates inside that notification and
// only notifies its own subscribers when the derived result actually changed.
// A Computed evaluates and publishes under a single lock, so readers never
// observe a result that mixes two dependency snapshots.
//
// Basic usage:
//
//	width := reactive.NewValue(1280)
//	size := reactive.NewComputed(func() string {
//		if width.Get() < 768 {
//			return "small"
//		}
//		return "large"
//	}, width)
//	defer size.Stop()
//
//	cancel := size.Subscribe(func(s string) { fmt.Println("size:", s) })
//	defer cancel()
//
//	width.Set(375) // prints "size: small"
//
// Watch adapts any Readable to a buffered channel for consumers living in
// another goroutine. Slow watchers lose values rather than blocking writers.
package reactive
