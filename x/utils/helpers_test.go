package utils

import (
	"github.com/invarch/weave"
)

// writeHandler writes the key/value pair and returns err.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ weave.Handler = writeHandler{}

func (h writeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, h.err
}

type panicHandler struct {
	err error
}

var _ weave.Handler = panicHandler{}

func (h panicHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	panic(h.err)
}

func (h panicHandler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	panic(h.err)
}

// emitHandler emits given events and returns err
type emitHandler struct {
	events []weave.Event
	err    error
}

func (h emitHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	return &weave.CheckResult{}, h.err
}

func (h emitHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	for _, e := range h.events {
		weave.EmitEvent(ctx, e)
	}
	if h.err != nil {
		return nil, h.err
	}
	return &weave.DeliverResult{}, nil
}

type pingEvent struct {
	N int `json:"n"`
}

func (pingEvent) EventName() string { return "test/ping" }
