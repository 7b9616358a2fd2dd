package shares

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// registry is an in memory Registry used by the tests. A core exists
// when it has an entry, true meaning frozen.
type registry map[uint64]bool

func (r registry) IsFrozen(db weave.ReadOnlyKVStore, coreID uint64) (bool, bool, error) {
	frozen, ok := r[coreID]
	return frozen, ok, nil
}

func (r registry) SetFrozen(ctx weave.Context, db weave.KVStore, coreID uint64, frozen bool) error {
	if _, ok := r[coreID]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "core %d", coreID)
	}
	r[coreID] = frozen
	return nil
}

func (registry) CoreAccount(coreID uint64) weave.Address {
	return weave.NewCondition("cores", "core", []byte{byte(coreID)}).Address()
}

// HasAsset knows only the main shares of its cores.
func (r registry) HasAsset(db weave.ReadOnlyKVStore, asset Asset) error {
	if _, ok := r[asset.CoreID]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "core %d", asset.CoreID)
	}
	if !asset.IsMain() {
		return errors.Wrapf(errors.ErrNotFound, "sub asset %s", asset)
	}
	return nil
}

// subAssets extends a registry with a set of registered sub assets.
type subAssets struct {
	registry
	assets []Asset
}

func (r subAssets) HasAsset(db weave.ReadOnlyKVStore, asset Asset) error {
	for _, a := range r.assets {
		if a == asset {
			return r.registry.HasAsset(db, MainAsset(asset.CoreID))
		}
	}
	return r.registry.HasAsset(db, asset)
}

// originKey is the context key of the core id acting as origin.
type originKey struct{}

// origin authorizes a core when its id is stored in the context.
type origin struct{}

func withOrigin(ctx weave.Context, coreID uint64) weave.Context {
	return context.WithValue(ctx, originKey{}, coreID)
}

func (origin) CheckOrigin(ctx weave.Context, coreID uint64) error {
	if id, ok := ctx.Value(originKey{}).(uint64); ok && id == coreID {
		return nil
	}
	return errors.Wrapf(errors.ErrUnauthorized, "core %d", coreID)
}

// assertIssuance fails the test unless the sum of all balances equals
// the total issuance of the asset.
func assertIssuance(t testing.TB, db weave.ReadOnlyKVStore, ctrl Controller, asset Asset) {
	t.Helper()
	var sum uint64
	err := ctrl.balances.Iterate(db, asset.Key(), func(key []byte, m orm.Model) error {
		sum += m.(*Balance).Amount
		return nil
	})
	if err != nil {
		t.Fatalf("cannot list holders: %s", err)
	}
	issuance, err := ctrl.TotalIssuance(db, asset)
	if err != nil {
		t.Fatalf("cannot load issuance: %s", err)
	}
	if sum != issuance {
		t.Fatalf("balances sum to %d, issuance is %d", sum, issuance)
	}
}
