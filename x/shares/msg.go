package shares

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

const (
	pathTransferMsg   = "shares/transfer"
	pathMintMsg       = "shares/mint"
	pathBurnMsg       = "shares/burn"
	pathSetBalanceMsg = "shares/set_balance"
	pathFreezeMsg     = "shares/freeze"
	pathThawMsg       = "shares/thaw"
)

var _ weave.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}

// Asset returns the transferred asset.
func (m *TransferMsg) Asset() Asset {
	return Asset{CoreID: m.CoreID, SubAssetID: m.SubAssetID}
}

var _ weave.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// Asset returns the minted asset.
func (m *MintMsg) Asset() Asset {
	return Asset{CoreID: m.CoreID, SubAssetID: m.SubAssetID}
}

var _ weave.Msg = (*BurnMsg)(nil)

func (BurnMsg) Path() string {
	return pathBurnMsg
}

func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

// Asset returns the burned asset.
func (m *BurnMsg) Asset() Asset {
	return Asset{CoreID: m.CoreID, SubAssetID: m.SubAssetID}
}

var _ weave.Msg = (*SetBalanceMsg)(nil)

func (SetBalanceMsg) Path() string {
	return pathSetBalanceMsg
}

// Validate accepts a zero amount, which clears the balance.
func (m *SetBalanceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Who", m.Who.Validate())
	return errs
}

// Asset returns the asset of the balance.
func (m *SetBalanceMsg) Asset() Asset {
	return Asset{CoreID: m.CoreID, SubAssetID: m.SubAssetID}
}

var _ weave.Msg = (*FreezeMsg)(nil)

func (FreezeMsg) Path() string {
	return pathFreezeMsg
}

func (m *FreezeMsg) Validate() error {
	return nil
}

var _ weave.Msg = (*ThawMsg)(nil)

func (ThawMsg) Path() string {
	return pathThawMsg
}

func (m *ThawMsg) Validate() error {
	return nil
}
