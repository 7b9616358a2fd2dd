package x

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
)

func TestMainSigner(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()

	ctx1 := &weavetest.CtxAuth{Key: "foo"}
	ctx2 := &weavetest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx        weave.Context
		auth       Authenticator
		mainSigner weave.Condition
	}{
		"empty context": {
			ctx:  context.Background(),
			auth: &weavetest.Auth{},
		},
		"signer a": {
			ctx:        context.Background(),
			auth:       &weavetest.Auth{Signer: a},
			mainSigner: a,
		},
		"first of many signers": {
			ctx:        context.Background(),
			auth:       &weavetest.Auth{Signers: []weave.Condition{b, a}},
			mainSigner: b,
		},
		"ctxAuth checks what is set by same key": {
			ctx:        ctx1.SetConditions(context.Background(), a, b),
			auth:       ctx1,
			mainSigner: a,
		},
		"ctxAuth with different key sees nothing": {
			ctx:  ctx1.SetConditions(context.Background(), a, b),
			auth: ctx2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
		})
	}
}
