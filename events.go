package weave

import (
	"context"
	"encoding/json"

	"github.com/tendermint/tendermint/libs/common"
)

// Event is a notification emitted by a handler when a state transition
// happens. Events are collected for the duration of a single transaction
// and returned to the client as tags.
type Event interface {
	// EventName returns a unique, short name of the event, for example
	// "shares/transfer".
	EventName() string
}

// EventCollector gathers all events emitted within a context.
type EventCollector struct {
	events []Event
}

// WithEventCollector returns a context with a new, empty event collector
// attached. All events emitted using the returned context are stored by the
// returned collector and are not visible to any collector declared by the
// parent context until explicitly merged.
func WithEventCollector(ctx Context) (Context, *EventCollector) {
	c := &EventCollector{}
	return context.WithValue(ctx, contextKeyEvents, c), c
}

// GetEventCollector returns the collector attached to the context, if any.
func GetEventCollector(ctx Context) (*EventCollector, bool) {
	c, ok := ctx.Value(contextKeyEvents).(*EventCollector)
	return c, ok && c != nil
}

// EmitEvent stores given event in the collector attached to the context.
// When no collector is attached, the event is dropped.
func EmitEvent(ctx Context, e Event) {
	if c, ok := GetEventCollector(ctx); ok {
		c.events = append(c.events, e)
	}
}

// Events returns all collected events in emission order.
func (c *EventCollector) Events() []Event {
	if c == nil {
		return nil
	}
	return c.events
}

// Merge appends all events collected by other.
func (c *EventCollector) Merge(other *EventCollector) {
	if c == nil || other == nil {
		return
	}
	c.events = append(c.events, other.events...)
}

// EventTags serializes given events into tags. Each event is represented by
// a single tag, the key being the event name and the value being the JSON
// encoded event.
func EventTags(events []Event) ([]common.KVPair, error) {
	if len(events) == 0 {
		return nil, nil
	}
	tags := make([]common.KVPair, 0, len(events))
	for _, e := range events {
		raw, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		tags = append(tags, common.KVPair{
			Key:   []byte(e.EventName()),
			Value: raw,
		})
	}
	return tags, nil
}
