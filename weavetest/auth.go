package weavetest

import (
	"context"
	"fmt"

	"github.com/invarch/weave"
)

// Auth is a mock x.Authenticator that authenticates a fixed set of
// conditions. Signer and Signers are merged, so a test can use whichever
// is more convenient.
type Auth struct {
	Signer  weave.Condition
	Signers []weave.Condition
}

func (a *Auth) GetConditions(weave.Context) []weave.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append(a.Signers, a.Signer)
}

func (a *Auth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is a mock x.Authenticator that reads the conditions from the
// context, under Key. Use SetConditions to authenticate.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx weave.Context, conds ...weave.Condition) weave.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx weave.Context) []weave.Condition {
	switch conds := ctx.Value(ctxAuthKey(a.Key)).(type) {
	case nil:
		return nil
	case []weave.Condition:
		return conds
	default:
		panic(fmt.Sprintf("invalid %q authentication value: %T", a.Key, conds))
	}
}

func (a *CtxAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
