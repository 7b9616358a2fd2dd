package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/shares"
)

const createCoreCost = 1000

// RegisterRoutes registers handlers for all core messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, reg Registry, ledger shares.Controller, wallets cash.Controller, fees cash.FeeHandler) {
	origin := NewOrigin(auth)
	r.Handle(&CreateCoreMsg{}, &createCoreHandler{
		auth:    auth,
		reg:     reg,
		ledger:  ledger,
		wallets: wallets,
		fees:    fees,
	})
	r.Handle(&SetParametersMsg{}, &setParametersHandler{origin: origin, reg: reg})
	r.Handle(&RemarkMsg{}, &remarkHandler{origin: origin})
	r.Handle(&CreateSubAssetsMsg{}, &createSubAssetsHandler{origin: origin, reg: reg, ledger: ledger})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery registers the registry buckets.
func RegisterQuery(qr weave.QueryRouter) {
	NewRegistry().RegisterQuery(qr)
}

type createCoreHandler struct {
	auth    x.Authenticator
	reg     Registry
	ledger  shares.Controller
	wallets cash.Controller
	fees    cash.FeeHandler
}

func (h *createCoreHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createCoreCost}, nil
}

// Deliver creates the core and returns its id, 8 bytes big endian, as
// the result data.
func (h *createCoreHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, creator, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	core := &Core{
		Metadata:         msg.Metadata,
		MinimumSupport:   msg.MinimumSupport,
		RequiredApproval: msg.RequiredApproval,
		Frozen:           true,
	}
	if err := h.reg.Create(db, core); err != nil {
		return nil, err
	}
	if err := h.ledger.Mint(ctx, db, shares.MainAsset(core.ID), creator, conf.CoreSeedBalance); err != nil {
		return nil, errors.Wrap(err, "seed balance")
	}

	fee, err := conf.Fee(msg.FeeAsset)
	if err != nil {
		return nil, err
	}
	imb, err := h.wallets.Withdraw(db, msg.FeeAsset, creator, fee)
	if err != nil {
		return nil, errors.Wrap(err, "creation fee")
	}
	if err := h.fees.HandleCreationFee(ctx, db, imb); err != nil {
		return nil, errors.Wrap(err, "creation fee")
	}

	weave.EmitEvent(ctx, CoreCreatedEvent{
		CoreAccount:      core.Account,
		Metadata:         core.Metadata,
		CoreID:           core.ID,
		MinimumSupport:   core.MinimumSupport,
		RequiredApproval: core.RequiredApproval,
	})
	return &weave.DeliverResult{Data: EncodeID(core.ID)}, nil
}

func (h *createCoreHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateCoreMsg, weave.Address, *Configuration, error) {
	var msg CreateCoreMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "creator signature missing")
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := conf.CheckMetadata(msg.Metadata); err != nil {
		return nil, nil, nil, err
	}
	return &msg, signer.Address(), conf, nil
}

type setParametersHandler struct {
	origin Origin
	reg    Registry
}

func (h *setParametersHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *setParametersHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, core, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	event := ParametersSetEvent{CoreID: core.ID}
	if msg.Metadata != nil {
		core.Metadata = msg.Metadata.Value
		event.Metadata = msg.Metadata.Value
	}
	if msg.MinimumSupport != nil {
		core.MinimumSupport = msg.MinimumSupport
		event.MinimumSupport = msg.MinimumSupport
	}
	if msg.RequiredApproval != nil {
		core.RequiredApproval = msg.RequiredApproval
		event.RequiredApproval = msg.RequiredApproval
	}
	if msg.Frozen != nil {
		frozen := msg.Frozen.Value
		core.Frozen = frozen
		event.FrozenTokens = &frozen
	}
	if err := h.reg.Save(db, core); err != nil {
		return nil, errors.Wrap(err, "save core")
	}
	weave.EmitEvent(ctx, event)
	return &weave.DeliverResult{}, nil
}

func (h *setParametersHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetParametersMsg, *Core, error) {
	var msg SetParametersMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, nil, err
	}
	core, err := h.reg.Get(db, msg.CoreID)
	if err != nil {
		return nil, nil, err
	}
	if msg.Metadata != nil {
		conf, err := LoadConfiguration(db)
		if err != nil {
			return nil, nil, err
		}
		if err := conf.CheckMetadata(msg.Metadata.Value); err != nil {
			return nil, nil, err
		}
	}
	return &msg, core, nil
}

type remarkHandler struct {
	origin Origin
}

func (h *remarkHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *remarkHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	weave.EmitEvent(ctx, RemarkedEvent{CoreID: msg.CoreID, Remark: msg.Remark})
	return &weave.DeliverResult{}, nil
}

func (h *remarkHandler) validate(ctx weave.Context, tx weave.Tx) (*RemarkMsg, error) {
	var msg RemarkMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	return &msg, nil
}

type createSubAssetsHandler struct {
	origin Origin
	reg    Registry
	ledger shares.Controller
}

func (h *createSubAssetsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *createSubAssetsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	for _, s := range msg.SubAssets {
		sub := &SubAsset{CoreID: msg.CoreID, SubAssetID: s.SubAssetID, Metadata: s.Metadata}
		if err := h.reg.CreateSubAsset(db, sub); err != nil {
			return nil, err
		}
		asset := shares.Asset{CoreID: msg.CoreID, SubAssetID: s.SubAssetID}
		if err := h.ledger.Mint(ctx, db, asset, s.Owner, s.Amount); err != nil {
			return nil, errors.Wrapf(err, "endowment of sub asset %d", s.SubAssetID)
		}
		weave.EmitEvent(ctx, SubAssetCreatedEvent{
			CoreID:     msg.CoreID,
			SubAssetID: s.SubAssetID,
			Metadata:   s.Metadata,
		})
	}
	return &weave.DeliverResult{}, nil
}

func (h *createSubAssetsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateSubAssetsMsg, error) {
	var msg CreateSubAssetsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.origin.CheckOrigin(ctx, msg.CoreID); err != nil {
		return nil, err
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	for _, s := range msg.SubAssets {
		if err := conf.CheckMetadata(s.Metadata); err != nil {
			return nil, errors.Wrapf(err, "sub asset %d", s.SubAssetID)
		}
		if _, err := h.reg.SubAsset(db, msg.CoreID, s.SubAssetID); err == nil {
			return nil, errors.Wrapf(ErrSubAssetAlreadyExists, "sub asset %d", s.SubAssetID)
		} else if !ErrSubAssetNotFound.Is(err) {
			return nil, err
		}
	}
	return &msg, nil
}
