package adapter

import (
	"sync"
	"sync/atomic"
)

// PendingCounter counts in-flight requests. It returns to zero once every
// dispatched request has settled, whatever its outcome.
type PendingCounter struct {
	value atomic.Int64

	mu     sync.Mutex
	subs   map[uint64]func(int64)
	nextID uint64
}

func newPendingCounter() *PendingCounter {
	return &PendingCounter{subs: make(map[uint64]func(int64))}
}

// Value returns the current number of in-flight requests.
func (c *PendingCounter) Value() int64 {
	return c.value.Load()
}

// Busy reports whether at least one request is in flight.
func (c *PendingCounter) Busy() bool {
	return c.Value() > 0
}

// Subscribe registers fn for every change of the counter and returns a
// function that removes it. Values are delivered in order; fn must not block
// or call back into the counter.
func (c *PendingCounter) Subscribe(fn func(int64)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *PendingCounter) inc() { c.add(1) }
func (c *PendingCounter) dec() { c.add(-1) }

func (c *PendingCounter) add(delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.value.Add(delta)
	for _, fn := range c.subs {
		fn(v)
	}
}
