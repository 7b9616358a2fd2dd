package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
	"github.com/invarch/weave/x/shares"
)

// Registry keeps track of all cores, their account index and their sub
// assets.
type Registry struct {
	cores     orm.ModelBucket
	accounts  orm.ModelBucket
	subAssets orm.ModelBucket
	ids       orm.Sequence
}

var _ shares.Registry = Registry{}

// NewRegistry returns a registry using the default buckets.
func NewRegistry() Registry {
	return Registry{
		cores:     orm.NewModelBucket("core", &Core{}),
		accounts:  orm.NewModelBucket("coreacc", &CoreRef{}),
		subAssets: orm.NewModelBucket("subasset", &SubAsset{}),
		ids:       orm.NewSequence("core", "id"),
	}
}

// RegisterQuery exposes cores as "/cores", the account index as
// "/cores/account" and sub assets as "/cores/subassets".
func (r Registry) RegisterQuery(qr weave.QueryRouter) {
	r.cores.Register("cores", qr)
	r.accounts.Register("cores/account", qr)
	r.subAssets.Register("cores/subassets", qr)
}

// Create allocates the next core id, derives the account of the core
// and stores it. The ID and Account of the given core are set.
func (r Registry) Create(db weave.KVStore, core *Core) error {
	id, err := r.ids.NextID(db)
	if err != nil {
		if errors.ErrOverflow.Is(err) {
			return errors.Wrap(ErrIDExhausted, err.Error())
		}
		return errors.Wrap(err, "next id")
	}
	core.ID = id
	core.Account = Account(id)

	if err := r.cores.Put(db, EncodeID(id), core); err != nil {
		return errors.Wrap(err, "save core")
	}
	if err := r.accounts.Put(db, core.Account, &CoreRef{CoreID: id}); err != nil {
		return errors.Wrap(err, "save account index")
	}
	return nil
}

// Get returns the core with the given id.
func (r Registry) Get(db weave.ReadOnlyKVStore, id uint64) (*Core, error) {
	var core Core
	if err := r.cores.One(db, EncodeID(id), &core); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrCoreNotFound, "core %d", id)
		}
		return nil, err
	}
	return &core, nil
}

// ByAccount returns the core owning the given derived account.
func (r Registry) ByAccount(db weave.ReadOnlyKVStore, account weave.Address) (*Core, error) {
	var ref CoreRef
	if err := r.accounts.One(db, account, &ref); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrCoreNotFound, "account %s", account)
		}
		return nil, err
	}
	return r.Get(db, ref.CoreID)
}

// Save updates an existing core. Cores are never deleted.
func (r Registry) Save(db weave.KVStore, core *Core) error {
	if err := r.cores.Has(db, EncodeID(core.ID)); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrCoreNotFound, "core %d", core.ID)
		}
		return err
	}
	return r.cores.Put(db, EncodeID(core.ID), core)
}

// NextID returns the id the next created core will get.
func (r Registry) NextID(db weave.ReadOnlyKVStore) (uint64, error) {
	return r.ids.Peek(db)
}

// IsFrozen returns the frozen flag of the core. found is false if the
// core does not exist.
func (r Registry) IsFrozen(db weave.ReadOnlyKVStore, id uint64) (frozen bool, found bool, err error) {
	core, err := r.Get(db, id)
	switch {
	case err == nil:
		return core.Frozen, true, nil
	case ErrCoreNotFound.Is(err):
		return false, false, nil
	default:
		return false, false, err
	}
}

// SetFrozen updates the frozen flag of the core.
func (r Registry) SetFrozen(ctx weave.Context, db weave.KVStore, id uint64, frozen bool) error {
	core, err := r.Get(db, id)
	if err != nil {
		return err
	}
	core.Frozen = frozen
	if err := r.Save(db, core); err != nil {
		return err
	}
	weave.EmitEvent(ctx, ParametersSetEvent{CoreID: id, FrozenTokens: &frozen})
	return nil
}

// CoreAccount returns the derived account of the core.
func (Registry) CoreAccount(id uint64) weave.Address {
	return Account(id)
}

// CreateSubAsset stores a new sub asset. It fails if the core does not
// exist or the sub asset id is already taken.
func (r Registry) CreateSubAsset(db weave.KVStore, sub *SubAsset) error {
	if _, err := r.Get(db, sub.CoreID); err != nil {
		return err
	}
	key := subAssetKey(sub.CoreID, sub.SubAssetID)
	switch err := r.subAssets.Has(db, key); {
	case err == nil:
		return errors.Wrapf(ErrSubAssetAlreadyExists, "core %d sub asset %d", sub.CoreID, sub.SubAssetID)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return r.subAssets.Put(db, key, sub)
}

// SubAsset returns the sub asset of the core.
func (r Registry) SubAsset(db weave.ReadOnlyKVStore, coreID uint64, subID uint32) (*SubAsset, error) {
	var sub SubAsset
	if err := r.subAssets.One(db, subAssetKey(coreID, subID), &sub); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrSubAssetNotFound, "core %d sub asset %d", coreID, subID)
		}
		return nil, err
	}
	return &sub, nil
}

// HasAsset returns nil if the asset exists. The main share of an
// existing core always exists.
func (r Registry) HasAsset(db weave.ReadOnlyKVStore, asset shares.Asset) error {
	if asset.IsMain() {
		_, err := r.Get(db, asset.CoreID)
		return err
	}
	_, err := r.SubAsset(db, asset.CoreID, asset.SubAssetID)
	return err
}
