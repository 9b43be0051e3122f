package store

import "github.com/aacio/aacsys"

// Aliases of the storage interfaces declared in the root package.

type ReadOnlyKVStore = aacsys.ReadOnlyKVStore
type SetDeleter = aacsys.SetDeleter
type KVStore = aacsys.KVStore
type Batch = aacsys.Batch
type Iterator = aacsys.Iterator
type CacheableKVStore = aacsys.CacheableKVStore
type KVCacheWrap = aacsys.KVCacheWrap
type CommitKVStore = aacsys.CommitKVStore
type CommitID = aacsys.CommitID
