package multisig

import (
	"bytes"
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/app"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/gconf"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/shares"
)

// callTx encodes a call as its path, a zero byte and the serialized
// message.
type callTx struct {
	msg weave.Msg
}

var _ weave.Tx = (*callTx)(nil)

func (c *callTx) GetMsg() (weave.Msg, error) {
	return c.msg, nil
}

func (c *callTx) Marshal() ([]byte, error) {
	raw, err := c.msg.Marshal()
	if err != nil {
		return nil, err
	}
	return append([]byte(c.msg.Path()+"\x00"), raw...), nil
}

func (c *callTx) Unmarshal(raw []byte) error {
	i := bytes.IndexByte(raw, 0)
	if i < 0 {
		return errors.Wrap(errors.ErrInput, "no path")
	}
	var msg weave.Msg
	switch path := string(raw[:i]); path {
	case "shares/mint":
		msg = &shares.MintMsg{}
	case "shares/burn":
		msg = &shares.BurnMsg{}
	case "shares/transfer":
		msg = &shares.TransferMsg{}
	case "shares/set_balance":
		msg = &shares.SetBalanceMsg{}
	case "cores/remark":
		msg = &cores.RemarkMsg{}
	case "multisig/operate":
		msg = &OperateMsg{}
	case "multisig/cancel_proposal":
		msg = &CancelProposalMsg{}
	case "test/write_fail":
		msg = &weavetest.Msg{RoutePath: path}
	default:
		return errors.Wrapf(errors.ErrInput, "unknown path %q", path)
	}
	if err := msg.Unmarshal(raw[i+1:]); err != nil {
		return err
	}
	c.msg = msg
	return nil
}

func decodeCall(raw []byte) (weave.Tx, error) {
	var tx callTx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return &tx, nil
}

func encodeCall(t testing.TB, msg weave.Msg) []byte {
	t.Helper()
	raw, err := (&callTx{msg: msg}).Marshal()
	assert.Nil(t, err)
	return raw
}

// writeFailHandler writes to the store and emits an event before it
// fails.
type writeFailHandler struct{}

func (writeFailHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return &weave.CheckResult{}, nil
}

func (writeFailHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set([]byte("written"), []byte("yes")); err != nil {
		return nil, err
	}
	weave.EmitEvent(ctx, cores.RemarkedEvent{Remark: []byte("written")})
	return nil, errors.Wrap(errors.ErrState, "written and failed")
}

type fixture struct {
	db     weave.CacheableKVStore
	auth   *weavetest.CtxAuth
	reg    cores.Registry
	ledger shares.Controller
	router *app.Router
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	db := store.MemStore()
	assert.Nil(t, gconf.Save(db, "cores", &cores.Configuration{
		MaxMetadata:     16,
		CoreSeedBalance: 1000000,
	}))

	f := &fixture{
		db:     db,
		auth:   &weavetest.CtxAuth{Key: "auth"},
		reg:    cores.NewRegistry(),
		router: app.NewRouter(),
	}
	f.ledger = shares.NewController(f.reg)

	auth := NewAuthenticator(f.auth)
	shares.RegisterRoutes(f.router, auth, cores.NewOrigin(auth), f.ledger)
	cores.RegisterRoutes(f.router, auth, f.reg, f.ledger, cash.NewController(), cash.BurnFeeHandler{})
	RegisterRoutes(f.router, auth, decodeCall, f.router, f.reg, f.ledger)
	f.router.Handle(&weavetest.Msg{RoutePath: "test/write_fail"}, writeFailHandler{})
	return f
}

type holding struct {
	who    weave.Condition
	amount uint64
}

// newCore creates a thawed core with the given main share holders.
func (f *fixture) newCore(t testing.TB, support, approval *cores.Threshold, holders ...holding) uint64 {
	t.Helper()
	core := &cores.Core{MinimumSupport: support, RequiredApproval: approval}
	assert.Nil(t, f.reg.Create(f.db, core))
	for _, h := range holders {
		assert.Nil(t, f.ledger.Mint(context.Background(), f.db, shares.MainAsset(core.ID), h.who.Address(), h.amount))
	}
	return core.ID
}

func (f *fixture) as(signer weave.Condition) weave.Context {
	ctx, _ := weave.WithEventCollector(context.Background())
	if signer == nil {
		return ctx
	}
	return f.auth.SetConditions(ctx, signer)
}

func (f *fixture) deliver(ctx weave.Context, msg weave.Msg) (*weave.DeliverResult, error) {
	return f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
}

func (f *fixture) operate(t testing.TB, signer weave.Condition, coreID uint64, call weave.Msg) (*weave.DeliverResult, error) {
	t.Helper()
	msg := &OperateMsg{CoreID: coreID, Call: encodeCall(t, call)}
	return f.deliver(f.as(signer), msg)
}

func (f *fixture) proposal(t testing.TB, coreID uint64, call weave.Msg) (*Proposal, error) {
	t.Helper()
	var p Proposal
	err := NewProposalBucket().One(f.db, ProposalKey(coreID, CallHash(encodeCall(t, call))), &p)
	return &p, err
}

func (f *fixture) balance(t testing.TB, coreID uint64, who weave.Address) uint64 {
	t.Helper()
	amount, err := f.ledger.Balance(f.db, shares.MainAsset(coreID), who)
	assert.Nil(t, err)
	return amount
}

// executed returns the executed events collected in the context.
func executed(ctx weave.Context) []ExecutedEvent {
	c, _ := weave.GetEventCollector(ctx)
	var res []ExecutedEvent
	for _, e := range c.Events() {
		if ev, ok := e.(ExecutedEvent); ok {
			res = append(res, ev)
		}
	}
	return res
}
