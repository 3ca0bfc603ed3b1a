// ABOUTME: Tests for the typed event bus
// ABOUTME: Covers ordered delivery, unsubscribe, nil bus and concurrent access

package eventbus

import (
	"slices"
	"sync"
	"testing"
)

func TestBus_PublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var received string

	bus.Subscribe(func(s string) {
		received = s
	})

	bus.Publish("hello")

	if received != "hello" {
		t.Errorf("received = %q, want %q", received, "hello")
	}
}

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var order []string

	bus.Subscribe(func(int) { order = append(order, "explorer") })
	bus.Subscribe(func(int) { order = append(order, "report") })
	bus.Subscribe(func(int) { order = append(order, "footer") })

	bus.Publish(1)

	want := []string{"explorer", "report", "footer"}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	calledA, calledB := false, false

	unsubA := bus.Subscribe(func(string) { calledA = true })
	bus.Subscribe(func(string) { calledB = true })

	unsubA()
	unsubA() // idempotent
	bus.Publish("test")

	if calledA {
		t.Error("handler should not be called after unsubscribe")
	}
	if !calledB {
		t.Error("remaining handler should still be called")
	}
	if bus.Count() != 1 {
		t.Errorf("Count() = %d, want 1", bus.Count())
	}
}

func TestBus_NilPublish(t *testing.T) {
	t.Parallel()

	var bus *Bus[int]
	bus.Publish(1) // must not panic
}

func TestBus_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var mu sync.Mutex
	sum := 0
	bus.Subscribe(func(n int) {
		mu.Lock()
		sum += n
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(2)
		}()
	}
	wg.Wait()

	if sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
}
