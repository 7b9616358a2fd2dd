package app

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// CommitStore wraps a committed store with two cache layers: one collects
// the changes of delivered transactions, the other is a scratch space for
// checking transactions. Only the deliver layer is written on commit.
type CommitStore struct {
	committed weave.CommitKVStore
	deliver   weave.KVCacheWrap
	check     weave.KVCacheWrap
}

// NewCommitStore loads the latest version of store and prepares fresh
// deliver and check caches on top of it.
func NewCommitStore(store weave.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the height and hash of the last commit.
func (cs *CommitStore) CommitInfo() (weave.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists all delivered changes and starts a new block with empty
// caches. Changes made while checking are dropped.
func (cs *CommitStore) Commit() (weave.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return weave.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

// CheckStore is the store used by CheckTx.
func (cs *CommitStore) CheckStore() weave.CacheableKVStore {
	return cs.check
}

// DeliverStore is the store used by DeliverTx and the genesis
// initialization.
func (cs *CommitStore) DeliverStore() weave.CacheableKVStore {
	return cs.deliver
}

// The chain ID is kept under the reserved "_wv:" prefix, outside of any
// extension bucket.
var chainIDKey = []byte("_wv:chainID")

// loadChainID returns the stored chain ID or an empty string before the
// genesis was processed.
func loadChainID(kv weave.ReadOnlyKVStore) (string, error) {
	raw, err := kv.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID stores the chain ID. It can be written only once.
func saveChainID(kv weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch exists, err := kv.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "chain id cannot be modified after genesis")
	}
	return errors.Wrap(kv.Set(chainIDKey, []byte(chainID)), "save chain id")
}
