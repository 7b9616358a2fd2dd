package cores

import (
	"context"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x/shares"
)

// GenesisHolder is an initial main share balance of a genesis core.
type GenesisHolder struct {
	Address weave.Address `json:"address"`
	Amount  uint64        `json:"amount"`
}

// GenesisCore describes a core created at chain start. Genesis cores
// get consecutive ids starting with the current sequence value and are
// not charged a creation fee.
type GenesisCore struct {
	Metadata         []byte          `json:"metadata"`
	MinimumSupport   *Threshold      `json:"minimum_support"`
	RequiredApproval *Threshold      `json:"required_approval"`
	Frozen           bool            `json:"frozen"`
	Holders          []GenesisHolder `json:"holders"`
}

// Initializer creates the cores listed under the "cores" genesis key.
// The configuration is loaded separately by gconf.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var cores []GenesisCore
	if err := opts.ReadOptions("cores", &cores); err != nil {
		return err
	}
	if len(cores) == 0 {
		return nil
	}

	reg := NewRegistry()
	ledger := shares.NewController(reg)
	ctx := context.Background()
	for i, g := range cores {
		core := &Core{
			Metadata:         g.Metadata,
			MinimumSupport:   g.MinimumSupport,
			RequiredApproval: g.RequiredApproval,
			Frozen:           g.Frozen,
		}
		if err := reg.Create(kv, core); err != nil {
			return errors.Wrapf(err, "core %d", i)
		}
		for _, h := range g.Holders {
			if err := h.Address.Validate(); err != nil {
				return errors.Wrapf(err, "core %d holder", i)
			}
			if err := ledger.Mint(ctx, kv, shares.MainAsset(core.ID), h.Address, h.Amount); err != nil {
				return errors.Wrapf(err, "core %d holder %s", i, h.Address)
			}
		}
	}
	return nil
}
