package shares

import (
	"encoding/binary"
	"fmt"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// Asset identifies a share class. SubAssetID zero is the main share of
// the core.
type Asset struct {
	CoreID     uint64 `json:"core_id"`
	SubAssetID uint32 `json:"sub_asset_id,omitempty"`
}

// MainAsset returns the main share of the core.
func MainAsset(coreID uint64) Asset {
	return Asset{CoreID: coreID}
}

// IsMain returns true for the main share of a core.
func (a Asset) IsMain() bool {
	return a.SubAssetID == 0
}

func (a Asset) String() string {
	if a.IsMain() {
		return fmt.Sprintf("core %d", a.CoreID)
	}
	return fmt.Sprintf("core %d sub asset %d", a.CoreID, a.SubAssetID)
}

// Key returns the store key prefix of the asset: core id and sub asset
// id, both big endian.
func (a Asset) Key() []byte {
	key := make([]byte, 12)
	binary.BigEndian.PutUint64(key, a.CoreID)
	binary.BigEndian.PutUint32(key[8:], a.SubAssetID)
	return key
}

func balanceKey(a Asset, who weave.Address) []byte {
	return append(a.Key(), who...)
}

var _ orm.Model = (*Balance)(nil)

// Validate rejects empty balances, which are removed from the store.
func (b *Balance) Validate() error {
	if b.Amount == 0 {
		return errors.Wrap(errors.ErrState, "zero balance is not stored")
	}
	return nil
}

func (b *Balance) Copy() orm.Model {
	cpy := *b
	return &cpy
}

var _ orm.Model = (*Issuance)(nil)

func (i *Issuance) Validate() error { return nil }

func (i *Issuance) Copy() orm.Model {
	cpy := *i
	return &cpy
}

// NewBalanceBucket returns the bucket of all share balances.
func NewBalanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("shares", &Balance{})
}

// NewIssuanceBucket returns the bucket of all total issuances.
func NewIssuanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("issuance", &Issuance{})
}
