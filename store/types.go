package store

import "github.com/invarch/weave"

// Move references for all storage types into this package
// for shorter names everywhere
type (
	ReadOnlyKVStore  = weave.ReadOnlyKVStore
	SetDeleter       = weave.SetDeleter
	KVStore          = weave.KVStore
	Batch            = weave.Batch
	Iterator         = weave.Iterator
	CacheableKVStore = weave.CacheableKVStore
	KVCacheWrap      = weave.KVCacheWrap
	CommitKVStore    = weave.CommitKVStore
	CommitID         = weave.CommitID
	Model            = weave.Model
)
