package state

import "larek/internal/events"

// recorder captures published events.
type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(name string, payload any) {
	r.events = append(r.events, events.Event{Name: name, Payload: payload})
}

func (r *recorder) names() []string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.Name
	}
	return names
}

func (r *recorder) count(name string) int {
	n := 0
	for _, e := range r.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

func (r *recorder) last(name string) (events.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Name == name {
			return r.events[i], true
		}
	}
	return events.Event{}, false
}
