package aacsys

// ReadOnlyKVStore gives read access to the state.
type ReadOnlyKVStore interface {
	// Get returns the value stored under key or nil if there is none.
	Get(key []byte) ([]byte, error)

	// Has reports whether key holds a value.
	Has(key []byte) (bool, error)

	// Iterator returns the keys in [start, end) in ascending order. A nil
	// bound is open. The range must not be written while the iterator is
	// in use.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator is Iterator in descending order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter writes the state. Callers must not modify key and value slices
// after passing them.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the read and write view of the state that handlers receive.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch groups writes that are applied together by Write.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator walks a key range. Release must be called once the iterator is no
// longer needed.
//
//	it, err := db.Iterator(start, end)
//	...
//	defer it.Release()
//	for {
//		key, value, err := it.Next()
//		if errors.ErrIteratorDone.Is(err) {
//			break
//		}
//		...
//	}
type Iterator interface {
	// Next returns the next pair in iteration order or ErrIteratorDone.
	Next() (key, value []byte, err error)
	Release()
}

// CacheableKVStore can stack a cache layer on top of itself. Actions are
// executed on a cache layer so that a failing action leaves no trace.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a cache layer. Reads see its own pending writes first.
// Write flushes them to the parent and Discard drops them.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the versioned root store that persists one version per
// block.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns the layer that collects the writes of the block
	// in progress.
	CacheWrap() KVCacheWrap

	// Commit persists the written changes as the next version.
	Commit() (CommitID, error)

	// LoadLatestVersion restores the newest complete version.
	LoadLatestVersion() error

	// LatestVersion describes the newest persisted version.
	LatestVersion() (CommitID, error)
}

// CommitID identifies a persisted version by its number and root hash.
type CommitID struct {
	Version int64
	Hash    []byte
}
