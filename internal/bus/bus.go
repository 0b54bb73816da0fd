// Package bus is the in-process notification channel between the import
// pipeline and the UI-facing layer.
package bus

import "sync"

// EventPresetsUpdated is emitted after any import changes the preset
// collection.
const EventPresetsUpdated = "presets.updated"

// Bus fans an event out to its subscribers. Delivery is best effort: each
// subscriber channel is buffered one deep and a pending, undelivered signal
// coalesces with the next one. Emit never blocks.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		subs: make(map[string]map[int]chan struct{}),
	}
}

// Emit signals every subscriber of event.
func (b *Bus) Emit(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[event] {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber has a signal pending already.
		}
	}
}

// Subscribe registers for event. The returned cancel must be called when the
// subscriber is done, or the channel leaks.
func (b *Bus) Subscribe(event string) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan struct{}, 1)
	if b.subs[event] == nil {
		b.subs[event] = make(map[int]chan struct{})
	}
	id := b.next
	b.next++
	b.subs[event][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[event], id)
	}
	return ch, cancel
}
