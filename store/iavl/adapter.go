/*
Package iavl provides the persistent, merkle-ized state of the chain,
backed by a tendermint iavl tree over goleveldb.
*/
package iavl

import (
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const (
	// DefaultCacheSize is the number of tree nodes kept in memory
	DefaultCacheSize = 10000
	// DefaultHistorySize is how many committed versions are retained.
	// Zero keeps all of them.
	DefaultHistorySize = 20
)

// CommitStore manages an iavl committed state
type CommitStore struct {
	tree        *iavl.MutableTree
	historySize int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing
func NewCommitStore(path, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, path)
	if err != nil {
		return CommitStore{}, errors.Wrapf(errors.ErrDatabase, "open leveldb %q: %s", path, err)
	}
	return newCommitStore(db, DefaultHistorySize), nil
}

// MockCommitStore creates a new in-memory store for testing.
func MockCommitStore() CommitStore {
	return newCommitStore(dbm.NewMemDB(), 0)
}

func newCommitStore(db dbm.DB, historySize int64) CommitStore {
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return CommitStore{
		tree:        tree,
		historySize: historySize,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info.
// Versions older than the history size are removed.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	if s.historySize > 0 {
		old := version - s.historySize
		if old > 0 && s.tree.VersionExists(old) {
			if err := s.tree.DeleteVersion(old); err != nil {
				return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "prune version %d: %s", old, err)
			}
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap wraps the working tree in a btree cache.
// All writes reach the tree only on Write.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	a := adapter{tree: s.tree}
	return store.NewBTreeCacheWrap(a, a.NewBatch(), nil)
}

// adapter exposes the working (uncommitted) tree as a KVStore
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = adapter{}

func (a adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a adapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

func (a adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

// NewBatch is non-atomic, the tree is only persisted on Commit
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

func (a adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, true), nil
}

func (a adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, false), nil
}

func (a adapter) iterate(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}
