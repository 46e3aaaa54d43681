package bus

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose buffer is full misses the event.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription
}

// Subscription is one subscriber's view of the bus.
type Subscription struct {
	C       <-chan Event
	ch      chan Event
	kinds   []Kind
	dropped atomic.Uint64
	bus     *Bus
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Publish delivers evt to every matching subscriber. A nil Bus discards it.
func (b *Bus) Publish(evt Event) {
	if b == nil {
		return
	}
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if !s.wants(evt.Kind) {
			continue
		}
		select {
		case s.ch <- evt:
		default:
			s.dropped.Add(1)
		}
	}
}

// Emit publishes kind with payload.
func (b *Bus) Emit(kind Kind, payload any) {
	b.Publish(Event{Kind: kind, Payload: payload})
}

// Subscribe registers a subscriber for kinds. With no kinds it receives
// every event; a kind ending in "." selects a namespace.
func (b *Bus) Subscribe(buffer int, kinds ...Kind) *Subscription {
	ch := make(chan Event, buffer)
	s := &Subscription{C: ch, ch: ch, kinds: kinds, bus: b}
	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()
	return s
}

// Close stops delivery. C is not closed, so pending receivers keep blocking
// until they select on something else.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	s.bus.subs = slices.DeleteFunc(s.bus.subs, func(o *Subscription) bool { return o == s })
}

// Dropped is the number of events missed because the buffer was full.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Subscription) wants(k Kind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	return slices.ContainsFunc(s.kinds, k.matches)
}
