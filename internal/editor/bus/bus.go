package bus

import "sync"

// Handler consumes every published event; consumers type-switch on the
// union members they care about.
type Handler func(Event)

// Bus dispatches events to subscribers synchronously and in subscription
// order. Every handler runs to completion; there is no cancellation.
// Publishes made from inside a handler are queued and dispatched after the
// current event has been delivered to all subscribers, which preserves the
// single-threaded dispatch-order semantics panels rely on.
type Bus struct {
	mu          sync.Mutex
	handlers    []Handler
	queue       []Event
	dispatching bool
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler. Subscription order is delivery order.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish enqueues the event and, unless a dispatch is already running,
// drains the queue on the calling goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	b.queue = append(b.queue, e)
	if b.dispatching {
		b.mu.Unlock()
		return
	}
	b.dispatching = true

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		handlers := make([]Handler, len(b.handlers))
		copy(handlers, b.handlers)
		b.mu.Unlock()

		for _, h := range handlers {
			h(next)
		}

		b.mu.Lock()
	}

	b.dispatching = false
	b.mu.Unlock()
}
