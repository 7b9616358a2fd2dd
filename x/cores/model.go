package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

var _ orm.Model = (*Core)(nil)

// Validate ensures the core is consistent with its id.
func (c *Core) Validate() error {
	var errs error
	if !c.Account.Equals(Account(c.ID)) {
		errs = errors.AppendField(errs, "Account", errors.Wrap(errors.ErrState, "not derived from the id"))
	}
	errs = errors.AppendField(errs, "MinimumSupport", c.MinimumSupport.Validate())
	errs = errors.AppendField(errs, "RequiredApproval", c.RequiredApproval.Validate())
	return errs
}

func (c *Core) Copy() orm.Model {
	cpy := *c
	cpy.Account = append(weave.Address(nil), c.Account...)
	cpy.Metadata = append([]byte(nil), c.Metadata...)
	cpy.MinimumSupport = c.MinimumSupport.clone()
	cpy.RequiredApproval = c.RequiredApproval.clone()
	return &cpy
}

func (t *Threshold) clone() *Threshold {
	if t == nil {
		return nil
	}
	cpy := Threshold{All: t.All}
	if t.Fraction != nil {
		f := *t.Fraction
		cpy.Fraction = &f
	}
	return &cpy
}

var _ orm.Model = (*CoreRef)(nil)

func (r *CoreRef) Validate() error { return nil }

func (r *CoreRef) Copy() orm.Model {
	cpy := *r
	return &cpy
}

var _ orm.Model = (*SubAsset)(nil)

// Validate rejects the reserved sub asset id zero, which stands for the
// main share of the core.
func (s *SubAsset) Validate() error {
	if s.SubAssetID == 0 {
		return errors.Field("SubAssetID", errors.ErrInput, "zero is reserved")
	}
	return nil
}

func (s *SubAsset) Copy() orm.Model {
	cpy := *s
	cpy.Metadata = append([]byte(nil), s.Metadata...)
	return &cpy
}

func subAssetKey(coreID uint64, subID uint32) []byte {
	key := make([]byte, 12)
	copy(key, EncodeID(coreID))
	key[8] = byte(subID >> 24)
	key[9] = byte(subID >> 16)
	key[10] = byte(subID >> 8)
	key[11] = byte(subID)
	return key
}
