package shares

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x"
)

// OriginChecker returns an error unless the context carries the origin
// of the core.
type OriginChecker interface {
	CheckOrigin(ctx weave.Context, coreID uint64) error
}

// RegisterRoutes registers handlers for all share messages. Minting,
// burning, setting a balance, freezing and thawing require the origin of
// the core.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, origin OriginChecker, ctrl Controller) {
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintMsg{}, &mintHandler{origin: origin, ctrl: ctrl})
	r.Handle(&BurnMsg{}, &burnHandler{origin: origin, ctrl: ctrl})
	r.Handle(&SetBalanceMsg{}, &setBalanceHandler{origin: origin, ctrl: ctrl})
	r.Handle(&FreezeMsg{}, &freezeHandler{origin: origin, ctrl: ctrl})
	r.Handle(&ThawMsg{}, &thawHandler{origin: origin, ctrl: ctrl})
}

type transferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

func (h *transferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *transferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(ctx, db, msg.Asset(), msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *transferHandler) validate(ctx weave.Context, tx weave.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source did not authorize the transfer")
	}
	return &msg, nil
}

type mintHandler struct {
	origin OriginChecker
	ctrl   Controller
}

func (h *mintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *mintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Mint(ctx, db, msg.Asset(), msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *mintHandler) validate(ctx weave.Context, tx weave.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}

type burnHandler struct {
	origin OriginChecker
	ctrl   Controller
}

func (h *burnHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *burnHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Burn(ctx, db, msg.Asset(), msg.Owner, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *burnHandler) validate(ctx weave.Context, tx weave.Tx) (*BurnMsg, error) {
	var msg BurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}

type setBalanceHandler struct {
	origin OriginChecker
	ctrl   Controller
}

func (h *setBalanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *setBalanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetBalance(ctx, db, msg.Asset(), msg.Who, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *setBalanceHandler) validate(ctx weave.Context, tx weave.Tx) (*SetBalanceMsg, error) {
	var msg SetBalanceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}

type freezeHandler struct {
	origin OriginChecker
	ctrl   Controller
}

func (h *freezeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *freezeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Freeze(ctx, db, MainAsset(msg.CoreID)); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *freezeHandler) validate(ctx weave.Context, tx weave.Tx) (*FreezeMsg, error) {
	var msg FreezeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}

type thawHandler struct {
	origin OriginChecker
	ctrl   Controller
}

func (h *thawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *thawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Thaw(ctx, db, MainAsset(msg.CoreID)); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *thawHandler) validate(ctx weave.Context, tx weave.Tx) (*ThawMsg, error) {
	var msg ThawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}
