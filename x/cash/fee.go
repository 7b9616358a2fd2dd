package cash

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
)

// NegativeImbalance is an amount removed from a wallet that was not yet
// credited anywhere. Whoever receives it decides where the funds go.
type NegativeImbalance struct {
	Asset  FeeAsset
	From   weave.Address
	Amount coin.Coin
}

// FeeHandler resolves the creation fee withdrawn when a core is created.
type FeeHandler interface {
	HandleCreationFee(ctx weave.Context, db weave.KVStore, imb NegativeImbalance) error
}

// FeeBurnedEvent is emitted when a fee is destroyed.
type FeeBurnedEvent struct {
	Asset  FeeAsset      `json:"asset"`
	From   weave.Address `json:"from"`
	Amount coin.Coin     `json:"amount"`
}

func (FeeBurnedEvent) EventName() string { return "cash/fee_burned" }

// FeeCollectedEvent is emitted when a fee is moved to the collector.
type FeeCollectedEvent struct {
	Asset     FeeAsset      `json:"asset"`
	From      weave.Address `json:"from"`
	Collector weave.Address `json:"collector"`
	Amount    coin.Coin     `json:"amount"`
}

func (FeeCollectedEvent) EventName() string { return "cash/fee_collected" }

// BurnFeeHandler drops every fee, reducing the total supply.
type BurnFeeHandler struct{}

var _ FeeHandler = BurnFeeHandler{}

func (BurnFeeHandler) HandleCreationFee(ctx weave.Context, db weave.KVStore, imb NegativeImbalance) error {
	if imb.Amount.IsZero() {
		return nil
	}
	weave.EmitEvent(ctx, FeeBurnedEvent{Asset: imb.Asset, From: imb.From, Amount: imb.Amount})
	return nil
}

// CollectorFunc returns the address fees are paid to.
type CollectorFunc func(weave.ReadOnlyKVStore) (weave.Address, error)

// CollectorFeeHandler deposits every fee in the wallet of the collector.
type CollectorFeeHandler struct {
	ctrl      Controller
	collector CollectorFunc
}

var _ FeeHandler = CollectorFeeHandler{}

// NewCollectorFeeHandler returns a fee handler crediting the collector
// returned by fn.
func NewCollectorFeeHandler(ctrl Controller, fn CollectorFunc) CollectorFeeHandler {
	return CollectorFeeHandler{ctrl: ctrl, collector: fn}
}

func (h CollectorFeeHandler) HandleCreationFee(ctx weave.Context, db weave.KVStore, imb NegativeImbalance) error {
	if imb.Amount.IsZero() {
		return nil
	}
	dest, err := h.collector(db)
	if err != nil {
		return errors.Wrap(err, "fee collector")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "fee collector")
	}
	if err := h.ctrl.IssueCoins(db, dest, imb.Amount); err != nil {
		return err
	}
	weave.EmitEvent(ctx, FeeCollectedEvent{Asset: imb.Asset, From: imb.From, Collector: dest, Amount: imb.Amount})
	return nil
}
