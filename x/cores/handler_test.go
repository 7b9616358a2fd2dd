package cores

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/app"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/gconf"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/shares"
)

type fixture struct {
	db      weave.CacheableKVStore
	auth    *weavetest.CtxAuth
	reg     Registry
	ledger  shares.Controller
	wallets cash.BaseController
	router  *app.Router
}

func newFixture(t testing.TB) *fixture {
	f := &fixture{
		db:      newTestStore(t),
		auth:    &weavetest.CtxAuth{Key: "auth"},
		reg:     NewRegistry(),
		wallets: cash.NewController(),
		router:  app.NewRouter(),
	}
	f.ledger = shares.NewController(f.reg)
	RegisterRoutes(f.router, f.auth, f.reg, f.ledger, f.wallets, cash.BurnFeeHandler{})
	return f
}

// as returns a context authenticated by the given conditions.
func (f *fixture) as(conds ...weave.Condition) weave.Context {
	ctx, _ := weave.WithEventCollector(context.Background())
	return f.auth.SetConditions(ctx, conds...)
}

func (f *fixture) createCore(t testing.TB, creator weave.Condition) uint64 {
	t.Helper()
	assert.Nil(t, f.wallets.IssueCoins(f.db, creator.Address(), coin.NewCoin(5, 0, "TNKR")))
	msg := &CreateCoreMsg{
		Metadata:         []byte("core"),
		MinimumSupport:   half(),
		RequiredApproval: half(),
	}
	res, err := f.router.Deliver(f.as(creator), f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)
	id, ok := DecodeID(res.Data)
	assert.Equal(t, true, ok)
	return id
}

func TestCreateCore(t *testing.T) {
	f := newFixture(t)
	creator := weavetest.NewCondition()
	assert.Nil(t, f.wallets.IssueCoins(f.db, creator.Address(), coin.NewCoin(7, 0, "TNKR")))
	assert.Nil(t, f.wallets.IssueCoins(f.db, creator.Address(), coin.NewCoin(1, 0, "KSM")))

	ctx := f.as(creator)
	events, _ := weave.GetEventCollector(ctx)
	msg := &CreateCoreMsg{
		Metadata:         []byte("my core"),
		MinimumSupport:   half(),
		RequiredApproval: All(),
	}

	_, err := f.router.Check(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)
	res, err := f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, EncodeID(0), res.Data)

	core, err := f.reg.Get(f.db, 0)
	assert.Nil(t, err)
	assert.Equal(t, true, core.Frozen)
	assert.Equal(t, []byte("my core"), core.Metadata)
	assert.Equal(t, Account(0), core.Account)

	seed, err := f.ledger.Balance(f.db, shares.MainAsset(0), creator.Address())
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000000), seed)

	wallet, err := f.wallets.Balance(f.db, creator.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(1, 0, "KSM"), coin.NewCoinp(2, 0, "TNKR")}, wallet)

	last := events.Events()[len(events.Events())-1]
	assert.Equal(t, CoreCreatedEvent{
		CoreAccount:      Account(0),
		Metadata:         []byte("my core"),
		CoreID:           0,
		MinimumSupport:   half(),
		RequiredApproval: All(),
	}, last)

	// The relay fee is charged in the other asset.
	msg.FeeAsset = cash.FeeAssetRelay
	res, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, EncodeID(1), res.Data)
	wallet, err = f.wallets.Balance(f.db, creator.Address())
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(2, 0, "TNKR")}, wallet)
}

func TestCreateCoreFailures(t *testing.T) {
	creator := weavetest.NewCondition()

	cases := map[string]struct {
		signers   []weave.Condition
		funds     coin.Coin
		msg       *CreateCoreMsg
		wantCheck *errors.Error
		wantErr   *errors.Error
	}{
		"metadata too long": {
			signers: []weave.Condition{creator},
			funds:   coin.NewCoin(10, 0, "TNKR"),
			msg: &CreateCoreMsg{
				Metadata:         make([]byte, 17),
				MinimumSupport:   half(),
				RequiredApproval: half(),
			},
			wantCheck: ErrMaxMetadataExceeded,
			wantErr:   ErrMaxMetadataExceeded,
		},
		"fee not covered": {
			signers: []weave.Condition{creator},
			funds:   coin.NewCoin(4, 0, "TNKR"),
			msg: &CreateCoreMsg{
				MinimumSupport:   half(),
				RequiredApproval: half(),
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"no signature": {
			funds: coin.NewCoin(10, 0, "TNKR"),
			msg: &CreateCoreMsg{
				MinimumSupport:   half(),
				RequiredApproval: half(),
			},
			wantCheck: errors.ErrUnauthorized,
			wantErr:   errors.ErrUnauthorized,
		},
		"invalid threshold": {
			signers: []weave.Condition{creator},
			funds:   coin.NewCoin(10, 0, "TNKR"),
			msg: &CreateCoreMsg{
				MinimumSupport:   Percent(3, 2),
				RequiredApproval: half(),
			},
			wantCheck: errors.ErrInput,
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			assert.Nil(t, f.wallets.IssueCoins(f.db, creator.Address(), tc.funds))

			ctx := f.as(tc.signers...)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := f.db.CacheWrap()
			_, err := f.router.Check(ctx, cache, tx)
			assert.IsErr(t, tc.wantCheck, err)
			cache.Discard()

			cache = f.db.CacheWrap()
			_, err = f.router.Deliver(ctx, cache, tx)
			assert.IsErr(t, tc.wantErr, err)
			cache.Discard()
		})
	}
}

func TestSetParameters(t *testing.T) {
	f := newFixture(t)
	id := f.createCore(t, weavetest.NewCondition())

	frozen := &BoolValue{Value: false}
	msg := &SetParametersMsg{
		CoreID:         id,
		Metadata:       &BytesValue{Value: []byte("renamed")},
		MinimumSupport: Percent(2, 3),
		Frozen:         frozen,
	}

	_, err := f.router.Deliver(f.as(weavetest.NewCondition()), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, ErrBadOrigin, err)
	_, err = f.router.Deliver(f.as(Condition(id+1)), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, ErrBadOrigin, err)

	ctx := f.as(Condition(id))
	events, _ := weave.GetEventCollector(ctx)
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)

	core, err := f.reg.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, []byte("renamed"), core.Metadata)
	assert.Equal(t, Percent(2, 3), core.MinimumSupport)
	assert.Equal(t, half(), core.RequiredApproval)
	assert.Equal(t, false, core.Frozen)

	no := false
	assert.Equal(t, []weave.Event{ParametersSetEvent{
		CoreID:         id,
		Metadata:       []byte("renamed"),
		MinimumSupport: Percent(2, 3),
		FrozenTokens:   &no,
	}}, events.Events())

	// An empty metadata value clears it, a nil one leaves it untouched.
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: &SetParametersMsg{CoreID: id, Metadata: &BytesValue{}}})
	assert.Nil(t, err)
	core, err = f.reg.Get(f.db, id)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(core.Metadata))

	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: &SetParametersMsg{
		CoreID:   id,
		Metadata: &BytesValue{Value: make([]byte, 17)},
	}})
	assert.IsErr(t, ErrMaxMetadataExceeded, err)

	missing := f.as(Condition(77))
	_, err = f.router.Deliver(missing, f.db, &weavetest.Tx{Msg: &SetParametersMsg{CoreID: 77}})
	assert.IsErr(t, ErrCoreNotFound, err)
}

func TestRemark(t *testing.T) {
	f := newFixture(t)
	id := f.createCore(t, weavetest.NewCondition())
	msg := &RemarkMsg{CoreID: id, Remark: []byte("hello")}

	_, err := f.router.Deliver(f.as(weavetest.NewCondition()), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, ErrBadOrigin, err)

	ctx := f.as(Condition(id))
	events, _ := weave.GetEventCollector(ctx)
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)
	assert.Equal(t, []weave.Event{RemarkedEvent{CoreID: id, Remark: []byte("hello")}}, events.Events())
}

func TestCreateSubAssets(t *testing.T) {
	f := newFixture(t)
	id := f.createCore(t, weavetest.NewCondition())
	alice := weavetest.RandomAddr(t)
	bob := weavetest.RandomAddr(t)

	msg := &CreateSubAssetsMsg{
		CoreID: id,
		SubAssets: []*SubAssetEndowment{
			{SubAssetID: 1, Metadata: []byte("gold"), Owner: alice, Amount: 100},
			{SubAssetID: 2, Metadata: []byte("silver"), Owner: bob, Amount: 50},
		},
	}

	_, err := f.router.Deliver(f.as(weavetest.NewCondition()), f.db, &weavetest.Tx{Msg: msg})
	assert.IsErr(t, ErrBadOrigin, err)

	ctx := f.as(Condition(id))
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)

	got, err := f.ledger.Balance(f.db, shares.Asset{CoreID: id, SubAssetID: 1}, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), got)
	got, err = f.ledger.TotalIssuance(f.db, shares.Asset{CoreID: id, SubAssetID: 2})
	assert.Nil(t, err)
	assert.Equal(t, uint64(50), got)

	sub, err := f.reg.SubAsset(f.db, id, 2)
	assert.Nil(t, err)
	assert.Equal(t, []byte("silver"), sub.Metadata)

	// Creating an existing sub asset fails before anything is written.
	again := &CreateSubAssetsMsg{
		CoreID: id,
		SubAssets: []*SubAssetEndowment{
			{SubAssetID: 3, Owner: alice, Amount: 1},
			{SubAssetID: 1, Owner: alice, Amount: 1},
		},
	}
	_, err = f.router.Check(ctx, f.db, &weavetest.Tx{Msg: again})
	assert.IsErr(t, ErrSubAssetAlreadyExists, err)
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: again})
	assert.IsErr(t, ErrSubAssetAlreadyExists, err)
	_, err = f.reg.SubAsset(f.db, id, 3)
	assert.IsErr(t, ErrSubAssetNotFound, err)

	tooLong := &CreateSubAssetsMsg{
		CoreID:    id,
		SubAssets: []*SubAssetEndowment{{SubAssetID: 4, Metadata: make([]byte, 17), Owner: alice}},
	}
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: tooLong})
	assert.IsErr(t, ErrMaxMetadataExceeded, err)
}

func TestEndowmentIsTheWholeIssuance(t *testing.T) {
	f := newFixture(t)
	id := f.createCore(t, weavetest.NewCondition())
	alice := weavetest.RandomAddr(t)
	asset := shares.Asset{CoreID: id, SubAssetID: 9}
	ctx := f.as(Condition(id))

	err := f.ledger.Mint(ctx, f.db, asset, alice, 500)
	assert.IsErr(t, ErrSubAssetNotFound, err)
	err = f.ledger.Mint(ctx, f.db, shares.MainAsset(id+1), alice, 500)
	assert.IsErr(t, ErrCoreNotFound, err)

	msg := &CreateSubAssetsMsg{
		CoreID:    id,
		SubAssets: []*SubAssetEndowment{{SubAssetID: 9, Owner: alice, Amount: 100}},
	}
	_, err = f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	assert.Nil(t, err)

	got, err := f.ledger.TotalIssuance(f.db, asset)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), got)
	got, err = f.ledger.Balance(f.db, asset, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), got)
}

func TestCreateSubAssetsMsgValidate(t *testing.T) {
	owner := weavetest.RandomAddr(t)

	err := (&CreateSubAssetsMsg{}).Validate()
	assert.FieldError(t, err, "SubAssets", errors.ErrEmpty)

	err = (&CreateSubAssetsMsg{SubAssets: []*SubAssetEndowment{
		{SubAssetID: 1, Owner: owner},
		{SubAssetID: 0, Owner: owner},
		{SubAssetID: 1, Owner: owner},
		{SubAssetID: 2},
	}}).Validate()
	assert.FieldError(t, err, "SubAssets.0.SubAssetID", nil)
	assert.FieldError(t, err, "SubAssets.1.SubAssetID", errors.ErrInput)
	assert.FieldError(t, err, "SubAssets.2.SubAssetID", ErrSubAssetAlreadyExists)
	assert.FieldError(t, err, "SubAssets.3.Owner", errors.ErrInput)
}

func TestGenesis(t *testing.T) {
	alice := weavetest.RandomAddr(t)
	bob := weavetest.RandomAddr(t)
	db := newTestStore(t)

	opts := weave.Options{"cores": []byte(`[
		{
			"metadata": "Z2VuZXNpcw==",
			"minimum_support": "50%",
			"required_approval": "all",
			"holders": [
				{"address": "` + alice.String() + `", "amount": 300},
				{"address": "` + bob.String() + `", "amount": 700}
			]
		}
	]`)}
	assert.Nil(t, Initializer{}.FromGenesis(opts, weave.GenesisParams{}, db))

	reg := NewRegistry()
	core, err := reg.Get(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, []byte("genesis"), core.Metadata)
	assert.Equal(t, false, core.Frozen)
	assert.Equal(t, uint64(500), core.MinimumSupport.Needed(1000))
	assert.Equal(t, true, core.RequiredApproval.All)

	ledger := shares.NewController(reg)
	total, err := ledger.TotalIssuance(db, shares.MainAsset(0))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), total)
	got, err := ledger.Balance(db, shares.MainAsset(0), bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(700), got)
}

func TestUpdateConfiguration(t *testing.T) {
	f := newFixture(t)
	owner := weavetest.NewCondition()

	// Without an owner the configuration is immutable.
	update := &UpdateConfigurationMsg{Patch: &Configuration{MaxMetadata: 64}}
	_, err := f.router.Deliver(f.as(owner), f.db, &weavetest.Tx{Msg: update})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	conf := testConfiguration()
	conf.Owner = owner.Address()
	assert.Nil(t, gconf.Save(f.db, packageName, conf))

	_, err = f.router.Deliver(f.as(weavetest.NewCondition()), f.db, &weavetest.Tx{Msg: update})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = f.router.Deliver(f.as(owner), f.db, &weavetest.Tx{Msg: update})
	assert.Nil(t, err)

	got, err := LoadConfiguration(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint32(64), got.MaxMetadata)
	// Fields missing from the patch are kept.
	assert.Equal(t, uint64(1000000), got.CoreSeedBalance)
	assert.Equal(t, owner.Address(), got.Owner)

	_, err = f.router.Deliver(f.as(owner), f.db, &weavetest.Tx{Msg: &UpdateConfigurationMsg{}})
	assert.FieldError(t, err, "Patch", errors.ErrEmpty)
}
