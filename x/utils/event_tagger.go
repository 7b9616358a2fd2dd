package utils

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is used by EventTagger as the Key in the Tag it appends
const ActionKey = "action"

// EventTagger collects all events emitted while a transaction is
// delivered and appends them to the result as tags, together with an
// `action = msg.Path()` tag. Events of a failed transaction are dropped.
type EventTagger struct{}

var _ weave.Decorator = EventTagger{}

// NewEventTagger creates an EventTagger decorator
func NewEventTagger() EventTagger {
	return EventTagger{}
}

// Check just passes the request along. No events are gathered.
func (EventTagger) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends the tags on the result if there is a success.
func (EventTagger) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	ctx, collector := weave.WithEventCollector(ctx)
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	tags, err := weave.EventTags(collector.Events())
	if err != nil {
		return nil, errors.Wrap(errors.ErrType, err.Error())
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	res.Tags = append(res.Tags, tags...)
	return res, nil
}
