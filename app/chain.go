package app

import (
	"reflect"

	"github.com/invarch/weave"
)

// Decorators is an ordered list of decorators waiting for the handler
// they will wrap.
type Decorators struct {
	chain []weave.Decorator
}

// ChainDecorators starts a chain. The first decorator is the outermost
// one and sees every transaction first:
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//		utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
//
// Nil decorators, including typed nil pointers, are skipped. This allows
// optional decorators to be passed without a condition.
func ChainDecorators(chain ...weave.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new chain with the given decorators appended. The
// receiver is not modified.
func (d Decorators) Chain(chain ...weave.Decorator) Decorators {
	next := make([]weave.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNilDecorator(d weave.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the chain with h, returning a handler that passes
// each transaction through all decorators in order.
func (d Decorators) WithHandler(h weave.Handler) weave.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{decorator: d.chain[i], next: h}
	}
	return h
}

// step is a single decorator bound to the rest of the chain.
type step struct {
	decorator weave.Decorator
	next      weave.Handler
}

var _ weave.Handler = step{}

func (s step) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return s.decorator.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return s.decorator.Deliver(ctx, db, tx, s.next)
}
