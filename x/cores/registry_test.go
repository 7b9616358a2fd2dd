package cores

import (
	"context"
	"math"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/invarch/weave/x/shares"
)

func TestRegistryCreate(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry()

	for want := uint64(0); want < 3; want++ {
		core := &Core{MinimumSupport: half(), RequiredApproval: All()}
		assert.Nil(t, reg.Create(db, core))
		assert.Equal(t, want, core.ID)
		assert.Equal(t, Account(want), core.Account)

		got, err := reg.Get(db, want)
		assert.Nil(t, err)
		assert.Equal(t, core, got)

		got, err = reg.ByAccount(db, core.Account)
		assert.Nil(t, err)
		assert.Equal(t, core, got)
	}

	next, err := reg.NextID(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), next)

	_, err = reg.Get(db, 3)
	assert.IsErr(t, ErrCoreNotFound, err)
	_, err = reg.ByAccount(db, Account(3))
	assert.IsErr(t, ErrCoreNotFound, err)

	err = reg.Save(db, &Core{ID: 7, Account: Account(7), MinimumSupport: half(), RequiredApproval: All()})
	assert.IsErr(t, ErrCoreNotFound, err)

	err = reg.Create(db, &Core{MinimumSupport: half()})
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestRegistryIDExhausted(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry()

	assert.Nil(t, reg.ids.Set(db, math.MaxUint64))
	err := reg.Create(db, &Core{MinimumSupport: half(), RequiredApproval: All()})
	assert.IsErr(t, ErrIDExhausted, err)

	next, err := reg.NextID(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), next)
}

func TestAccountDerivation(t *testing.T) {
	assert.Equal(t, Condition(1).Address(), Account(1))
	if Account(1).Equals(Account(2)) {
		t.Fatal("accounts of different cores must differ")
	}
	id, ok := DecodeID(EncodeID(12345))
	assert.Equal(t, true, ok)
	assert.Equal(t, uint64(12345), id)
	_, ok = DecodeID([]byte{1, 2})
	assert.Equal(t, false, ok)

	ext, typ, data, err := Condition(9).Parse()
	assert.Nil(t, err)
	assert.Equal(t, "cores", ext)
	assert.Equal(t, "core", typ)
	assert.Equal(t, EncodeID(9), data)
}

func TestRegistryFrozen(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry()
	ctx, events := weave.WithEventCollector(context.Background())

	core := &Core{MinimumSupport: half(), RequiredApproval: All(), Frozen: true}
	assert.Nil(t, reg.Create(db, core))

	frozen, found, err := reg.IsFrozen(db, core.ID)
	assert.Nil(t, err)
	assert.Equal(t, true, found)
	assert.Equal(t, true, frozen)

	assert.Nil(t, reg.SetFrozen(ctx, db, core.ID, false))
	frozen, found, err = reg.IsFrozen(db, core.ID)
	assert.Nil(t, err)
	assert.Equal(t, true, found)
	assert.Equal(t, false, frozen)

	no := false
	assert.Equal(t, []weave.Event{ParametersSetEvent{CoreID: core.ID, FrozenTokens: &no}}, events.Events())

	_, found, err = reg.IsFrozen(db, 42)
	assert.Nil(t, err)
	assert.Equal(t, false, found)

	err = reg.SetFrozen(ctx, db, 42, true)
	assert.IsErr(t, ErrCoreNotFound, err)
}

func TestRegistrySubAssets(t *testing.T) {
	db := store.MemStore()
	reg := NewRegistry()

	core := &Core{MinimumSupport: half(), RequiredApproval: All()}
	assert.Nil(t, reg.Create(db, core))

	sub := &SubAsset{CoreID: core.ID, SubAssetID: 1, Metadata: []byte("gold")}
	assert.Nil(t, reg.CreateSubAsset(db, sub))

	err := reg.CreateSubAsset(db, &SubAsset{CoreID: core.ID, SubAssetID: 1})
	assert.IsErr(t, ErrSubAssetAlreadyExists, err)
	err = reg.CreateSubAsset(db, &SubAsset{CoreID: 99, SubAssetID: 1})
	assert.IsErr(t, ErrCoreNotFound, err)
	err = reg.CreateSubAsset(db, &SubAsset{CoreID: core.ID, SubAssetID: 0})
	assert.IsErr(t, errors.ErrInput, err)

	got, err := reg.SubAsset(db, core.ID, 1)
	assert.Nil(t, err)
	assert.Equal(t, sub, got)
	_, err = reg.SubAsset(db, core.ID, 2)
	assert.IsErr(t, ErrSubAssetNotFound, err)

	assert.Nil(t, reg.HasAsset(db, shares.MainAsset(core.ID)))
	assert.Nil(t, reg.HasAsset(db, shares.Asset{CoreID: core.ID, SubAssetID: 1}))
	assert.IsErr(t, ErrSubAssetNotFound, reg.HasAsset(db, shares.Asset{CoreID: core.ID, SubAssetID: 2}))
	assert.IsErr(t, ErrCoreNotFound, reg.HasAsset(db, shares.MainAsset(5)))
}
