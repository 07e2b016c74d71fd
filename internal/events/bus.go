// Package events provides the synchronous publish/subscribe bus that connects
// the storefront's models and views.
//
// Subscriptions select events with a Matcher predicate: an exact name, a
// namespace family such as every "order.<field>:change", or every event.
// Publish calls matching handlers synchronously in registration order. A
// handler that panics is recovered and logged; the remaining handlers still
// run.
package events

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Event is a named notification with an optional payload.
type Event struct {
	Name    string
	Payload any
}

// Handler consumes a published event.
type Handler func(Event)

// Matcher reports whether a subscription wants events with the given name.
type Matcher func(name string) bool

// SubscriptionID identifies a registration for Unsubscribe.
type SubscriptionID uint64

// Exact matches a single event name.
func Exact(name string) Matcher {
	return func(n string) bool { return n == name }
}

// Namespace matches names starting with prefix and ending with suffix,
// e.g. Namespace("order.", ":change") matches "order.address:change".
func Namespace(prefix, suffix string) Matcher {
	return func(n string) bool {
		return len(n) > len(prefix)+len(suffix) &&
			strings.HasPrefix(n, prefix) &&
			strings.HasSuffix(n, suffix)
	}
}

// Any matches every event.
func Any() Matcher {
	return func(string) bool { return true }
}

type subscription struct {
	id      SubscriptionID
	match   Matcher
	handler Handler
}

// Bus dispatches events to subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID SubscriptionID
	logger zerolog.Logger
}

// NewBus creates an event bus. Handler panics are reported to logger.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		logger: logger.With().Str("component", "event-bus").Logger(),
	}
}

// Subscribe registers handler for every event accepted by match.
func (b *Bus) Subscribe(match Matcher, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, match: match, handler: handler})
	return b.nextID
}

// On registers handler for a single event name.
func (b *Bus) On(name string, handler Handler) SubscriptionID {
	return b.Subscribe(Exact(name), handler)
}

// OnAll registers handler for every event.
func (b *Bus) OnAll(handler Handler) SubscriptionID {
	return b.Subscribe(Any(), handler)
}

// Unsubscribe removes a registration. It returns false if id is unknown.
func (b *Bus) Unsubscribe(id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers an event to every matching handler in registration order.
// Handlers added while a publish is in progress only see later events.
func (b *Bus) Publish(name string, payload any) {
	b.mu.RLock()
	subs := append([]subscription(nil), b.subs...)
	b.mu.RUnlock()

	ev := Event{Name: name, Payload: payload}
	for _, s := range subs {
		if !s.match(name) {
			continue
		}
		b.deliver(s, ev)
	}
}

func (b *Bus) deliver(s subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Interface("panic", r).
				Str("event", ev.Name).
				Uint64("subscription", uint64(s.id)).
				Msg("event handler panicked")
		}
	}()
	s.handler(ev)
}
