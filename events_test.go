package weave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Value int `json:"value"`
}

func (testEvent) EventName() string { return "test/event" }

func TestEventCollector(t *testing.T) {
	// Emitting without a collector must not fail.
	EmitEvent(context.Background(), testEvent{Value: 1})

	ctx, parent := WithEventCollector(context.Background())
	EmitEvent(ctx, testEvent{Value: 2})

	subctx, child := WithEventCollector(ctx)
	EmitEvent(subctx, testEvent{Value: 3})
	assert.Len(t, parent.Events(), 1)
	assert.Len(t, child.Events(), 1)

	parent.Merge(child)
	assert.Equal(t, []Event{testEvent{Value: 2}, testEvent{Value: 3}}, parent.Events())

	tags, err := EventTags(parent.Events())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "test/event", string(tags[0].Key))
	assert.Equal(t, `{"value":2}`, string(tags[0].Value))
}
