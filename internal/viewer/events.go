package viewer

import (
	"sync"
	"time"
)

// Event is one render-state transition, published for diagnostics.
type Event struct {
	ContainerID string    `json:"container_id"`
	Phase       string    `json:"phase"`
	Format      string    `json:"format,omitempty"`
	Path        string    `json:"path,omitempty"`
	Message     string    `json:"message,omitempty"`
	Time        time.Time `json:"time"`
}

// EventBus fans render-state transitions out to subscribers. Delivery is
// best-effort: a subscriber that cannot keep up loses events rather than
// blocking the render pipeline.
type EventBus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called to release it.
func (b *EventBus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to all current subscribers.
func (b *EventBus) Publish(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
