package shares

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/app"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
)

func TestTransferHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		signer    weave.Condition
		msg       weave.Msg
		wantCheck *errors.Error
		wantErr   *errors.Error
		wantAlice uint64
	}{
		"transfer signed by the source": {
			signer: alice,
			msg: &TransferMsg{
				CoreID:      1,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      10,
			},
			wantAlice: 90,
		},
		"transfer not signed by the source": {
			signer: bob,
			msg: &TransferMsg{
				CoreID:      1,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      10,
			},
			wantCheck: errors.ErrUnauthorized,
			wantErr:   errors.ErrUnauthorized,
			wantAlice: 100,
		},
		"invalid destination": {
			signer: alice,
			msg: &TransferMsg{
				CoreID:      1,
				Source:      alice.Address(),
				Destination: weave.Address("x"),
				Amount:      10,
			},
			wantCheck: errors.ErrInput,
			wantErr:   errors.ErrInput,
			wantAlice: 100,
		},
		"insufficient balance fails only on deliver": {
			signer: alice,
			msg: &TransferMsg{
				CoreID:      1,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      101,
			},
			wantErr:   ErrBalanceTooLow,
			wantAlice: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(registry{1: false})
			ctx := context.Background()
			assert.Nil(t, ctrl.Mint(ctx, db, MainAsset(1), alice.Address(), 100))

			rt := app.NewRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer}, origin{}, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := rt.Check(ctx, cache, tx)
			assert.IsErr(t, tc.wantCheck, err)
			cache.Discard()

			_, err = rt.Deliver(ctx, db, tx)
			assert.IsErr(t, tc.wantErr, err)

			got, err := ctrl.Balance(db, MainAsset(1), alice.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.wantAlice, got)
		})
	}
}

func TestPrivilegedHandlers(t *testing.T) {
	db := store.MemStore()
	reg := registry{1: false, 2: false}
	asset := Asset{CoreID: 1, SubAssetID: 4}
	ctrl := NewController(subAssets{registry: reg, assets: []Asset{asset}})
	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{}, origin{}, ctrl)

	holder := weavetest.RandomAddr(t)
	core1 := withOrigin(context.Background(), 1)
	core2 := withOrigin(context.Background(), 2)

	mint := &weavetest.Tx{Msg: &MintMsg{CoreID: 1, SubAssetID: 4, Destination: holder, Amount: 50}}
	_, err := rt.Deliver(core2, db, mint)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(context.Background(), db, mint)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(core1, db, mint)
	assert.Nil(t, err)

	freeze := &weavetest.Tx{Msg: &FreezeMsg{CoreID: 1}}
	_, err = rt.Check(core2, db, freeze)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(core1, db, freeze)
	assert.Nil(t, err)
	assert.Equal(t, true, reg[1])

	burn := &weavetest.Tx{Msg: &BurnMsg{CoreID: 1, SubAssetID: 4, Owner: holder, Amount: 20}}
	_, err = rt.Deliver(core2, db, burn)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(core1, db, burn)
	assert.Nil(t, err)

	thaw := &weavetest.Tx{Msg: &ThawMsg{CoreID: 1}}
	_, err = rt.Deliver(core2, db, thaw)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(core1, db, thaw)
	assert.Nil(t, err)
	assert.Equal(t, false, reg[1])

	got, err := ctrl.Balance(db, asset, holder)
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), got)
	assertIssuance(t, db, ctrl, asset)
}

func TestSetBalanceHandler(t *testing.T) {
	db := store.MemStore()
	asset := Asset{CoreID: 1, SubAssetID: 2}
	ctrl := NewController(subAssets{registry: registry{1: false, 2: false}, assets: []Asset{asset}})
	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{}, origin{}, ctrl)

	holder := weavetest.RandomAddr(t)
	assert.Nil(t, ctrl.Mint(context.Background(), db, asset, holder, 70))

	set := &weavetest.Tx{Msg: &SetBalanceMsg{CoreID: 1, SubAssetID: 2, Who: holder, Amount: 25}}
	_, err := rt.Check(withOrigin(context.Background(), 2), db, set)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = rt.Deliver(context.Background(), db, set)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	ctx, events := weave.WithEventCollector(withOrigin(context.Background(), 1))
	_, err = rt.Deliver(ctx, db, set)
	assert.Nil(t, err)
	assert.Equal(t, []weave.Event{
		BalanceSetEvent{Asset: asset, Who: holder, Amount: 25},
		TotalIssuanceSetEvent{Asset: asset, Amount: 25},
	}, events.Events())

	got, err := ctrl.Balance(db, asset, holder)
	assert.Nil(t, err)
	assert.Equal(t, uint64(25), got)
	assertIssuance(t, db, ctrl, asset)

	unknown := &weavetest.Tx{Msg: &SetBalanceMsg{CoreID: 1, SubAssetID: 3, Who: holder, Amount: 5}}
	_, err = rt.Deliver(ctx, db, unknown)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestMsgValidate(t *testing.T) {
	addr := weavetest.RandomAddr(t)

	assert.FieldError(t, (&MintMsg{Destination: addr}).Validate(), "Amount", errors.ErrAmount)
	assert.FieldError(t, (&MintMsg{Amount: 1}).Validate(), "Destination", errors.ErrInput)
	assert.FieldError(t, (&MintMsg{Destination: addr, Amount: 1}).Validate(), "Amount", nil)
	assert.FieldError(t, (&BurnMsg{Owner: addr}).Validate(), "Amount", errors.ErrAmount)
	assert.FieldError(t, (&TransferMsg{Source: addr}).Validate(), "Destination", errors.ErrInput)
	assert.FieldError(t, (&TransferMsg{Source: addr}).Validate(), "Source", nil)
	assert.FieldError(t, (&SetBalanceMsg{}).Validate(), "Who", errors.ErrInput)
	assert.FieldError(t, (&SetBalanceMsg{Who: addr}).Validate(), "Who", nil)
}
