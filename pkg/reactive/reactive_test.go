package reactive_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/reactive"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("get returns initial value", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(42)
		assert.Equal(t, 42, v.Get())
	})

	t.Run("set notifies subscribers", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue("a")

		var got []string
		cancel := v.Subscribe(func(s string) { got = append(got, s) })
		defer cancel()

		v.Set("b")
		v.Set("c")

		assert.Equal(t, []string{"b", "c"}, got)
		assert.Equal(t, "c", v.Get())
	})

	t.Run("set with same value is a no-op", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(1)

		calls := 0
		v.Subscribe(func(int) { calls++ })

		v.Set(1)
		assert.Equal(t, 0, calls)

		v.Set(2)
		v.Set(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancel stops notifications and is idempotent", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)

		calls := 0
		cancel := v.Subscribe(func(int) { calls++ })
		v.Set(1)
		cancel()
		cancel()
		v.Set(2)

		assert.Equal(t, 1, calls)
	})

	t.Run("nil subscriber is ignored", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)
		cancel := v.Subscribe(nil)
		require.NotNil(t, cancel)
		assert.NotPanics(t, func() { v.Set(1) })
		cancel()
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				v.Set(i)
			}()
			go func() {
				defer wg.Done()
				_ = v.Get()
			}()
		}
		wg.Wait()
	})
}

func TestConst(t *testing.T) {
	t.Parallel()

	c := reactive.Const("fixed")
	assert.Equal(t, "fixed", c.Get())

	cancel := c.Subscribe(func(string) { t.Fatal("const must not notify") })
	cancel()
}

func TestComputed(t *testing.T) {
	t.Parallel()

	t.Run("evaluates eagerly", func(t *testing.T) {
		t.Parallel()
		a := reactive.NewValue(2)
		b := reactive.NewValue(3)
		sum := reactive.NewComputed(func() int { return a.Get() + b.Get() }, a, b)
		defer sum.Stop()

		assert.Equal(t, 5, sum.Get())
	})

	t.Run("recomputes on dependency change", func(t *testing.T) {
		t.Parallel()
		a := reactive.NewValue(2)
		b := reactive.NewValue(3)
		sum := reactive.NewComputed(func() int { return a.Get() + b.Get() }, a, b)
		defer sum.Stop()

		var got []int
		sum.Subscribe(func(v int) { got = append(got, v) })

		a.Set(10)
		b.Set(1)

		assert.Equal(t, 11, sum.Get())
		assert.Equal(t, []int{13, 11}, got)
	})

	t.Run("does not notify when result is unchanged", func(t *testing.T) {
		t.Parallel()
		n := reactive.NewValue(1)
		positive := reactive.NewComputed(func() bool { return n.Get() > 0 }, n)
		defer positive.Stop()

		calls := 0
		positive.Subscribe(func(bool) { calls++ })

		n.Set(2)
		n.Set(3)
		assert.Equal(t, 0, calls)

		n.Set(-1)
		assert.Equal(t, 1, calls)
		assert.False(t, positive.Get())
	})

	t.Run("refresh is idempotent", func(t *testing.T) {
		t.Parallel()
		evaluations := 0
		n := reactive.NewValue(1)
		c := reactive.NewComputed(func() int {
			evaluations++
			return n.Get() * 2
		}, n)
		defer c.Stop()

		assert.False(t, c.Refresh())
		assert.False(t, c.Refresh())
		assert.Equal(t, 2, c.Get())
		assert.Equal(t, 3, evaluations)
	})

	t.Run("chains computed values", func(t *testing.T) {
		t.Parallel()
		n := reactive.NewValue(1)
		double := reactive.NewComputed(func() int { return n.Get() * 2 }, n)
		defer double.Stop()
		label := reactive.NewComputed(func() string {
			if double.Get() >= 10 {
				return "big"
			}
			return "small"
		}, double)
		defer label.Stop()

		assert.Equal(t, "small", label.Get())
		n.Set(5)
		assert.Equal(t, "big", label.Get())
	})

	t.Run("stop detaches from dependencies", func(t *testing.T) {
		t.Parallel()
		n := reactive.NewValue(1)
		c := reactive.NewComputed(func() int { return n.Get() }, n)

		c.Stop()
		c.Stop()
		n.Set(7)

		assert.Equal(t, 1, c.Get())
		assert.False(t, c.Refresh())
	})

	t.Run("concurrent writers deliver in store order", func(t *testing.T) {
		t.Parallel()
		n := reactive.NewValue(0)
		tens := reactive.NewComputed(func() int { return n.Get() / 10 }, n)
		defer tens.Stop()

		entered := make(chan struct{})
		release := make(chan struct{})
		var (
			mu    sync.Mutex
			calls int
			last  int
		)
		tens.Subscribe(func(v int) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(entered)
				<-release
			}
			mu.Lock()
			last = v
			mu.Unlock()
		})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			n.Set(15)
		}()
		<-entered

		second := make(chan struct{})
		go func() {
			defer wg.Done()
			n.Set(25)
			close(second)
		}()

		select {
		case <-second:
			require.Fail(t, "second write finished while the first was still being delivered")
		case <-time.After(50 * time.Millisecond):
		}

		close(release)
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, tens.Get())
		assert.Equal(t, 2, last)
		assert.Equal(t, 2, calls)
	})

	t.Run("nil dependencies are ignored", func(t *testing.T) {
		t.Parallel()
		c := reactive.NewComputed(func() int { return 1 }, nil)
		defer c.Stop()
		assert.Equal(t, 1, c.Get())
	})
}

func TestWatch(t *testing.T) {
	t.Parallel()

	t.Run("delivers values", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)
		w := reactive.Watch[int](context.Background(), v, 4)
		defer w.Close()

		v.Set(1)
		v.Set(2)

		assert.Equal(t, 1, <-w.C())
		assert.Equal(t, 2, <-w.C())
		assert.Zero(t, w.Dropped())
	})

	t.Run("drops values when buffer is full", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)
		w := reactive.Watch[int](context.Background(), v, 1)
		defer w.Close()

		v.Set(1)
		v.Set(2)
		v.Set(3)

		assert.Equal(t, 1, <-w.C())
		assert.Equal(t, uint64(2), w.Dropped())
	})

	t.Run("closes on context cancellation", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)
		ctx, cancel := context.WithCancel(context.Background())
		w := reactive.Watch[int](ctx, v, 1)

		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-w.C():
				return !ok
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)

		assert.NotPanics(t, func() { v.Set(5) })
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		v := reactive.NewValue(0)
		w := reactive.Watch[int](context.Background(), v, 1)

		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		v.Set(1)
		_, ok := <-w.C()
		assert.False(t, ok)
	})
}
