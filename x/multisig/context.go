package multisig

import (
	"context"

	"github.com/invarch/weave"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/cores"
)

type contextKey int // local to the multisig module

const (
	contextKeyOrigin contextKey = iota
)

// withCoreOrigin is private, as only an executed proposal can act as a
// core.
func withCoreOrigin(ctx weave.Context, coreID uint64) weave.Context {
	return context.WithValue(ctx, contextKeyOrigin, cores.Condition(coreID))
}

// Authenticate exposes the core origin set by an executed proposal.
//
// While a proposal is executed the call is authorized by the core
// condition only, signatures of the transaction that triggered the
// execution are hidden. Outside of an execution the conditions of the
// wrapped authenticator are returned.
type Authenticate struct {
	inner x.Authenticator
}

var _ x.Authenticator = Authenticate{}

// NewAuthenticator wraps the authenticator used outside of proposal
// executions.
func NewAuthenticator(inner x.Authenticator) Authenticate {
	return Authenticate{inner: inner}
}

// GetConditions returns the core condition of an executed proposal or
// the conditions of the wrapped authenticator.
func (a Authenticate) GetConditions(ctx weave.Context) []weave.Condition {
	// (val, ok) form to return nil instead of panic if unset
	if val, ok := ctx.Value(contextKeyOrigin).(weave.Condition); ok {
		return []weave.Condition{val}
	}
	if a.inner == nil {
		return nil
	}
	return a.inner.GetConditions(ctx)
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
