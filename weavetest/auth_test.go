package weavetest

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/weavetest/assert"
)

func TestAuth(t *testing.T) {
	a, b, c := NewCondition(), NewCondition(), NewCondition()

	cases := map[string]struct {
		auth      Auth
		wantConds []weave.Condition
	}{
		"nobody": {
			auth:      Auth{},
			wantConds: nil,
		},
		"signer only": {
			auth:      Auth{Signer: a},
			wantConds: []weave.Condition{a},
		},
		"signers only": {
			auth:      Auth{Signers: []weave.Condition{a, b}},
			wantConds: []weave.Condition{a, b},
		},
		"signer and signers": {
			auth:      Auth{Signer: c, Signers: []weave.Condition{a, b}},
			wantConds: []weave.Condition{a, b, c},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.wantConds, tc.auth.GetConditions(nil))
			for _, cond := range tc.wantConds {
				if !tc.auth.HasAddress(nil, cond.Address()) {
					t.Errorf("%s must be authenticated", cond)
				}
			}
			if tc.auth.HasAddress(nil, NewCondition().Address()) {
				t.Fatal("random condition must not be authenticated")
			}
		})
	}
}

func TestCtxAuth(t *testing.T) {
	a := CtxAuth{Key: "auth"}
	ctx := context.Background()

	assert.Equal(t, []weave.Condition(nil), a.GetConditions(ctx))
	if a.HasAddress(ctx, NewCondition().Address()) {
		t.Fatal("empty context must not authenticate")
	}

	conds := []weave.Condition{NewCondition(), NewCondition()}
	ctx = a.SetConditions(ctx, conds...)
	assert.Equal(t, conds, a.GetConditions(ctx))
	for _, cond := range conds {
		if !a.HasAddress(ctx, cond.Address()) {
			t.Errorf("%s must be authenticated", cond)
		}
	}

	// Conditions stored under a different key are not visible.
	other := CtxAuth{Key: "other"}
	if other.HasAddress(ctx, conds[0].Address()) {
		t.Fatal("conditions leaked between keys")
	}
}
