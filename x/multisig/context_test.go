package multisig

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/invarch/weave/x/cores"
)

func TestAuthenticate(t *testing.T) {
	signer := weavetest.NewCondition()
	inner := &weavetest.CtxAuth{Key: "sigs"}
	auth := NewAuthenticator(inner)

	ctx := inner.SetConditions(context.Background(), signer)
	assert.Equal(t, []weave.Condition{signer}, auth.GetConditions(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, signer.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, cores.Account(4)))

	// Inside an execution only the core is authorized.
	ctx = withCoreOrigin(ctx, 4)
	assert.Equal(t, []weave.Condition{cores.Condition(4)}, auth.GetConditions(ctx))
	assert.Equal(t, false, auth.HasAddress(ctx, signer.Address()))
	assert.Equal(t, true, auth.HasAddress(ctx, cores.Account(4)))

	// Nested executions replace the origin.
	ctx = withCoreOrigin(ctx, 5)
	assert.Equal(t, false, auth.HasAddress(ctx, cores.Account(4)))
	assert.Equal(t, true, auth.HasAddress(ctx, cores.Account(5)))

	var bare Authenticate
	assert.Equal(t, 0, len(bare.GetConditions(context.Background())))
	assert.Equal(t, true, bare.HasAddress(withCoreOrigin(context.Background(), 1), cores.Account(1)))
}
