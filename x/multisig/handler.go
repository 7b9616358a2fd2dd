package multisig

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/shares"
)

// CallDecoder decodes the call of a proposal. Marshaling the returned
// transaction must produce the canonical encoding of the call.
type CallDecoder func(raw []byte) (weave.Tx, error)

// RegisterRoutes registers handlers for all multisig messages. Calls
// that gather enough support are executed with exec, usually the router
// of the application.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, decode CallDecoder, exec weave.Deliverer, reg cores.Registry, ledger shares.Controller) {
	e := &engine{
		auth:      auth,
		origin:    cores.NewOrigin(auth),
		decode:    decode,
		exec:      exec,
		reg:       reg,
		ledger:    ledger,
		proposals: NewProposalBucket(),
	}
	r.Handle(&OperateMsg{}, &operateHandler{e})
	r.Handle(&VoteMsg{}, &voteHandler{e})
	r.Handle(&WithdrawVoteMsg{}, &withdrawVoteHandler{e})
	r.Handle(&CancelProposalMsg{}, &cancelProposalHandler{e})
}

// RegisterQuery exposes pending proposals as "/proposals". Keys are
// prefixed by the core id.
func RegisterQuery(qr weave.QueryRouter) {
	NewProposalBucket().Register("proposals", qr)
}

// engine holds the state shared by all multisig handlers.
type engine struct {
	auth      x.Authenticator
	origin    cores.Origin
	decode    CallDecoder
	exec      weave.Deliverer
	reg       cores.Registry
	ledger    shares.Controller
	proposals orm.ModelBucket
}

func (e *engine) voter(ctx weave.Context) (weave.Address, error) {
	signer := x.MainSigner(ctx, e.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "voter signature missing")
	}
	return signer.Address(), nil
}

func (e *engine) proposal(db weave.ReadOnlyKVStore, coreID uint64, callHash []byte) (*Proposal, error) {
	var p Proposal
	if err := e.proposals.One(db, ProposalKey(coreID, callHash), &p); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrProposalNotFound, "core %d call %X", coreID, callHash)
		}
		return nil, err
	}
	return &p, nil
}

// weight returns the current share balance of the voter in the voting
// asset of the proposal.
func (e *engine) weight(db weave.ReadOnlyKVStore, p *Proposal, voter weave.Address) (uint64, error) {
	asset := shares.Asset{CoreID: p.CoreID, SubAssetID: p.SubAssetID}
	w, err := e.ledger.Balance(db, asset, voter)
	if err != nil {
		return 0, err
	}
	if w == 0 {
		return 0, errors.Wrapf(ErrNoPermission, "%s holds no shares of %s", voter, asset)
	}
	return w, nil
}

// evaluate executes the call of the proposal if it is supported by
// enough holders. Otherwise the proposal is saved. stored must be true
// if the proposal is already in the store.
func (e *engine) evaluate(ctx weave.Context, db weave.KVStore, p *Proposal, stored bool) (*weave.DeliverResult, error) {
	passed, err := e.passed(db, p)
	if err != nil {
		return nil, err
	}
	key := ProposalKey(p.CoreID, p.CallHash)
	if !passed {
		if err := e.proposals.Put(db, key, p); err != nil {
			return nil, errors.Wrap(err, "save proposal")
		}
		return &weave.DeliverResult{}, nil
	}
	if stored {
		if err := e.proposals.Delete(db, key); err != nil {
			return nil, errors.Wrap(err, "delete proposal")
		}
	}
	return e.execute(ctx, db, p)
}

// passed is true when the ayes reach the minimum support of the core
// relative to the current issuance, and the required approval relative
// to all cast votes.
func (e *engine) passed(db weave.ReadOnlyKVStore, p *Proposal) (bool, error) {
	core, err := e.reg.Get(db, p.CoreID)
	if err != nil {
		return false, err
	}
	total, err := e.ledger.TotalIssuance(db, shares.Asset{CoreID: p.CoreID, SubAssetID: p.SubAssetID})
	if err != nil {
		return false, err
	}
	cast, ok := add(p.YesWeight, p.NoWeight)
	if !ok {
		return false, errors.Wrap(errors.ErrOverflow, "cast votes")
	}
	return p.YesWeight >= core.MinimumSupport.Needed(total) &&
		core.RequiredApproval.Reached(p.YesWeight, cast), nil
}

// execute dispatches the call with the origin of the core. Changes and
// events of a failed call are discarded. The outcome is reported as an
// event and never fails the transaction that triggered the execution.
func (e *engine) execute(ctx weave.Context, db weave.KVStore, p *Proposal) (*weave.DeliverResult, error) {
	cacheable, ok := db.(weave.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrState, "cannot isolate call in %T", db)
	}

	call, err := e.decode(p.Call)
	var res *weave.DeliverResult
	if err == nil {
		cache := cacheable.CacheWrap()
		callCtx, events := weave.WithEventCollector(withCoreOrigin(ctx, p.CoreID))
		res, err = e.run(callCtx, cache, call)
		if err == nil {
			if err := cache.Write(); err != nil {
				return nil, errors.Wrap(err, "write call changes")
			}
			if parent, ok := weave.GetEventCollector(ctx); ok {
				parent.Merge(events)
			}
		} else {
			cache.Discard()
		}
	}

	code, log := errors.ABCIInfo(err, false)
	event := ExecutedEvent{
		CoreID:   p.CoreID,
		CallHash: p.CallHash,
		Code:     code,
		Log:      log,
	}
	if call != nil {
		event.Call = weave.GetPath(call)
	}
	weave.EmitEvent(ctx, event)
	weave.GetLogger(ctx).Debug("proposal executed",
		"core", p.CoreID, "call", event.Call, "code", code)

	if err != nil || res == nil {
		return &weave.DeliverResult{}, nil
	}
	return &weave.DeliverResult{Data: res.Data, Log: res.Log}, nil
}

func (e *engine) run(ctx weave.Context, db weave.KVStore, call weave.Tx) (res *weave.DeliverResult, err error) {
	defer errors.Recover(&err)
	return e.exec.Deliver(ctx, db, call)
}

type operateHandler struct {
	*engine
}

var _ weave.Handler = (*operateHandler)(nil)

// operation is a validated OperateMsg.
type operation struct {
	proposal *Proposal
	stored   bool
	voter    weave.Address
	weight   uint64
}

func (h *operateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

// Deliver starts a proposal or votes for an existing one. The call is
// executed immediately when the vote makes it pass, in which case no
// proposal is kept.
func (h *operateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	op, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	p := op.proposal
	if err := p.addVote(&Vote{Address: op.voter, Weight: op.weight}); err != nil {
		return nil, err
	}

	if op.stored {
		weave.EmitEvent(ctx, VoteAddedEvent{
			CoreID:    p.CoreID,
			Voter:     op.voter,
			CallHash:  p.CallHash,
			Weight:    op.weight,
			YesWeight: p.YesWeight,
			NoWeight:  p.NoWeight,
		})
	} else {
		total, err := h.ledger.TotalIssuance(db, shares.Asset{CoreID: p.CoreID, SubAssetID: p.SubAssetID})
		if err != nil {
			return nil, err
		}
		core, err := h.reg.Get(db, p.CoreID)
		if err != nil {
			return nil, err
		}
		path := ""
		if call, err := h.decode(p.Call); err == nil {
			path = weave.GetPath(call)
		}
		weave.EmitEvent(ctx, VoteStartedEvent{
			CoreID:      p.CoreID,
			SubAssetID:  p.SubAssetID,
			Executor:    op.voter,
			CallHash:    p.CallHash,
			Call:        path,
			VotesAdded:  op.weight,
			TotalIssued: total,
			VotesNeeded: core.MinimumSupport.Needed(total),
		})
	}
	return h.evaluate(ctx, db, p, op.stored)
}

func (h *operateHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*operation, error) {
	var msg OperateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	voter, err := h.voter(ctx)
	if err != nil {
		return nil, err
	}
	canonical, err := h.canonicalCall(msg.Call)
	if err != nil {
		return nil, err
	}
	hash := CallHash(canonical)

	op := operation{voter: voter}
	switch p, err := h.proposal(db, msg.CoreID, hash); {
	case err == nil:
		// The voting asset was fixed when the call was proposed.
		op.proposal = p
		op.stored = true
	case ErrProposalNotFound.Is(err):
		if err := h.reg.HasAsset(db, shares.Asset{CoreID: msg.CoreID, SubAssetID: msg.SubAssetID}); err != nil {
			return nil, err
		}
		conf, err := cores.LoadConfiguration(db)
		if err != nil {
			return nil, err
		}
		if err := conf.CheckMetadata(msg.Metadata); err != nil {
			return nil, err
		}
		op.proposal = &Proposal{
			CoreID:     msg.CoreID,
			CallHash:   hash,
			SubAssetID: msg.SubAssetID,
			Call:       canonical,
			FeeAsset:   msg.FeeAsset,
			Metadata:   msg.Metadata,
		}
	default:
		return nil, err
	}

	if _, voted := op.proposal.findVoter(voter); voted {
		return nil, errors.Wrapf(ErrAlreadyVoted, "%s", voter)
	}
	if op.weight, err = h.weight(db, op.proposal, voter); err != nil {
		return nil, err
	}
	return &op, nil
}

// canonicalCall decodes and validates the call and returns its canonical
// encoding.
func (h *operateHandler) canonicalCall(raw []byte) ([]byte, error) {
	call, err := h.decode(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	msg, err := call.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "call message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "call message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid call")
	}
	canonical, err := call.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "encode call")
	}
	return canonical, nil
}

type voteHandler struct {
	*engine
}

var _ weave.Handler = (*voteHandler)(nil)

func (h *voteHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *voteHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	p, vote, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := p.addVote(vote); err != nil {
		return nil, err
	}
	weave.EmitEvent(ctx, VoteAddedEvent{
		CoreID:    p.CoreID,
		Voter:     vote.Address,
		CallHash:  p.CallHash,
		Weight:    vote.Weight,
		Reject:    vote.Reject,
		YesWeight: p.YesWeight,
		NoWeight:  p.NoWeight,
	})
	return h.evaluate(ctx, db, p, true)
}

func (h *voteHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Proposal, *Vote, error) {
	var msg VoteMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	voter, err := h.voter(ctx)
	if err != nil {
		return nil, nil, err
	}
	p, err := h.proposal(db, msg.CoreID, msg.CallHash)
	if err != nil {
		return nil, nil, err
	}
	if _, voted := p.findVoter(voter); voted {
		return nil, nil, errors.Wrapf(ErrAlreadyVoted, "%s", voter)
	}
	w, err := h.weight(db, p, voter)
	if err != nil {
		return nil, nil, err
	}
	return p, &Vote{Address: voter, Weight: w, Reject: msg.Reject}, nil
}

type withdrawVoteHandler struct {
	*engine
}

var _ weave.Handler = (*withdrawVoteHandler)(nil)

func (h *withdrawVoteHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

// Deliver removes the vote with the weight it was cast with. The
// proposal is removed together with its last vote. Withdrawing never
// executes a call.
func (h *withdrawVoteHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	p, voter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vote, err := p.removeVote(voter)
	if err != nil {
		return nil, err
	}

	key := ProposalKey(p.CoreID, p.CallHash)
	if len(p.Voters) == 0 {
		err = h.proposals.Delete(db, key)
	} else {
		err = h.proposals.Put(db, key, p)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update proposal")
	}

	weave.EmitEvent(ctx, VoteWithdrawnEvent{
		CoreID:   p.CoreID,
		Voter:    voter,
		CallHash: p.CallHash,
		Weight:   vote.Weight,
	})
	return &weave.DeliverResult{}, nil
}

func (h *withdrawVoteHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Proposal, weave.Address, error) {
	var msg WithdrawVoteMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	voter, err := h.voter(ctx)
	if err != nil {
		return nil, nil, err
	}
	p, err := h.proposal(db, msg.CoreID, msg.CallHash)
	if err != nil {
		return nil, nil, err
	}
	if _, voted := p.findVoter(voter); !voted {
		return nil, nil, errors.Wrapf(ErrNotVoter, "%s", voter)
	}
	return p, voter, nil
}

type cancelProposalHandler struct {
	*engine
}

var _ weave.Handler = (*cancelProposalHandler)(nil)

func (h *cancelProposalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *cancelProposalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.proposals.Delete(db, ProposalKey(msg.CoreID, msg.CallHash)); err != nil {
		return nil, errors.Wrap(err, "delete proposal")
	}
	weave.EmitEvent(ctx, ProposalCanceledEvent{CoreID: msg.CoreID, CallHash: msg.CallHash})
	return &weave.DeliverResult{}, nil
}

func (h *cancelProposalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CancelProposalMsg, error) {
	var msg CancelProposalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	if _, err := h.proposal(db, msg.CoreID, msg.CallHash); err != nil {
		return nil, err
	}
	return &msg, nil
}
