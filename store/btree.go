package store

import (
	"bytes"

	"github.com/google/btree"
)

// DefaultFreeListSize is the number of btree nodes kept for reuse.
const DefaultFreeListSize = btree.DefaultFreeListSize

// BTreeCacheable turns any KVStore into a CacheableKVStore by caching
// writes in a btree.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a cache whose writes are applied to the wrapped store
// only when written.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns an in-memory store without any persistence.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// RecordingStore returns an in-memory store together with the batch
// that records every write performed on it.
func RecordingStore() (CacheableKVStore, *NonAtomicBatch) {
	e := EmptyKVStore{}
	b := NewNonAtomicBatch(e)
	return NewBTreeCacheWrap(e, b, nil), b
}

// BTreeCacheWrap keeps all writes in a btree, on top of a read only
// store. Reads prefer the cached state. Writes are also recorded in a
// batch that is applied to the parent on Write.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache over kv that records its writes in
// batch. Pass a free list to share btree nodes between caches; nil
// allocates a new one.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap stacks another cache on top of this one. Writing it applies
// the changes to this cache only.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch writing to this cache.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write applies all cached changes to the parent store and empties the
// cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all cached changes. Released nodes return to the free
// list.
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(item{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(item{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if it, ok := b.cached(key); ok {
		return it.value, nil
	}
	return b.back.Get(key)
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if it, ok := b.cached(key); ok {
		return !it.deleted, nil
	}
	return b.back.Has(key)
}

// cached returns the cached state of key, if the key was written.
func (b BTreeCacheWrap) cached(key []byte) (item, bool) {
	res := b.bt.Get(item{key: key})
	if res == nil {
		return item{}, false
	}
	return res.(item), true
}

// Iterator returns the keys in [start, end) in ascending order, merging
// the cache with the parent store.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ascendBtree(b.bt, start, end).wrap(parent), nil
}

// ReverseIterator returns the keys in [start, end) in descending order,
// merging the cache with the parent store.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return descendBtree(b.bt, start, end).wrap(parent), nil
}

// item is a cached write. A deleted item shadows the parent value.
type item struct {
	key     []byte
	value   []byte
	deleted bool
}

func (i item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, keyOf(than)) < 0
}

// below is a search pivot that sorts right before the item with the same
// key. It turns the inclusive descend bounds of the btree into exclusive
// ones.
type below []byte

func (b below) Less(than btree.Item) bool {
	return bytes.Compare(b, keyOf(than)) <= 0
}

func keyOf(i btree.Item) []byte {
	switch i := i.(type) {
	case item:
		return i.key
	case below:
		return i
	default:
		panic("unknown btree item")
	}
}
