package utils

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// Recovery is a decorator turning panics of the wrapped handlers into
// ErrPanic errors. Recovered panics are logged together with the
// transaction path.
type Recovery struct{}

var _ weave.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Checker) (_ *weave.CheckResult, err error) {
	defer logPanic(ctx, tx, &err)
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx, next weave.Deliverer) (_ *weave.DeliverResult, err error) {
	defer logPanic(ctx, tx, &err)
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}

func logPanic(ctx weave.Context, tx weave.Tx, err *error) {
	if !errors.ErrPanic.Is(*err) {
		return
	}
	logger := weave.GetLogger(ctx)
	if tx != nil {
		logger = logger.With("path", weave.GetPath(tx))
	}
	logger.Error("recovered from panic", "err", *err)
}
