package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishOrder(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var calls []string
	bus.On("basket:changed", func(Event) { calls = append(calls, "first") })
	bus.OnAll(func(Event) { calls = append(calls, "all") })
	bus.On("basket:changed", func(Event) { calls = append(calls, "second") })

	bus.Publish("basket:changed", nil)

	assert.Equal(t, []string{"first", "all", "second"}, calls)
}

func TestBus_Matching(t *testing.T) {
	tests := []struct {
		name    string
		match   Matcher
		event   string
		matched bool
	}{
		{name: "Exact hit", match: Exact("modal:open"), event: "modal:open", matched: true},
		{name: "Exact miss", match: Exact("modal:open"), event: "modal:close", matched: false},
		{name: "Namespace hit", match: Namespace("order.", ":change"), event: "order.address:change", matched: true},
		{name: "Namespace other form", match: Namespace("order.", ":change"), event: "contacts.email:change", matched: false},
		{name: "Namespace wrong suffix", match: Namespace("order.", ":change"), event: "order.address:submit", matched: false},
		{name: "Namespace empty field", match: Namespace("order.", ":change"), event: "order.:change", matched: false},
		{name: "Namespace ignores plain order events", match: FieldChanges(FormOrder), event: OrderSubmit, matched: false},
		{name: "Any", match: Any(), event: "whatever", matched: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matched, tt.match(tt.event))
		})
	}
}

func TestBus_PayloadDelivered(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var got Event
	bus.Subscribe(FieldChanges(FormContacts), func(e Event) { got = e })

	bus.Publish(FieldChanged(FormContacts, "email"), FieldChange{Field: "email", Value: "e@x.com"})

	assert.Equal(t, "contacts.email:change", got.Name)
	assert.Equal(t, FieldChange{Field: "email", Value: "e@x.com"}, got.Payload)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	count := 0
	id := bus.On("success:close", func(Event) { count++ })

	bus.Publish("success:close", nil)
	require.True(t, bus.Unsubscribe(id))
	bus.Publish("success:close", nil)

	assert.Equal(t, 1, count)
	assert.False(t, bus.Unsubscribe(id), "second unsubscribe should report unknown id")
}

func TestBus_PanickingHandlerDoesNotStopDispatch(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	reached := false
	bus.On("boom", func(Event) { panic("handler failure") })
	bus.On("boom", func(Event) { reached = true })

	assert.NotPanics(t, func() { bus.Publish("boom", nil) })
	assert.True(t, reached)
}

func TestBus_NestedPublish(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var calls []string
	bus.On("outer", func(Event) {
		calls = append(calls, "outer-start")
		bus.Publish("inner", nil)
		calls = append(calls, "outer-end")
	})
	bus.On("inner", func(Event) { calls = append(calls, "inner") })

	bus.Publish("outer", nil)

	assert.Equal(t, []string{"outer-start", "inner", "outer-end"}, calls)
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	late := 0
	bus.On("tick", func(Event) {
		bus.On("tick", func(Event) { late++ })
	})

	bus.Publish("tick", nil)
	assert.Equal(t, 0, late, "handler added mid-dispatch must not see the current event")

	bus.Publish("tick", nil)
	assert.Equal(t, 1, late)
}
