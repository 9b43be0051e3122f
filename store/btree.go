package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree is the branching factor of every cache layer. Layers are short
// lived and hold the writes of a single action or block, so a small degree
// keeps inserts cheap.
const btreeDegree = 2

// BTreeCacheable turns any KVStore into a CacheableKVStore whose cache
// layers are in-memory btrees.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a layer that collects writes until Write is called.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns a store that keeps everything in memory. Writing the
// returned store is a no-op, so it is meant for tests and throwaway state.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheWrap keeps pending writes in a btree sorted by key and serves
// reads from it before falling back to the parent store.
type BTreeCacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap returns a cache layer over parent. All writes are
// recorded in batch and reach the parent only when Write is called.
// A nil free list allocates a new one. Nested layers share the free list of
// their ancestor.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		tree:   btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap stacks another layer on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch that applies its operations to this layer.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all pending operations to the parent and empties the layer.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops all pending operations. Released nodes go back to the free
// list.
func (b BTreeCacheWrap) Discard() {
	for b.tree.DeleteMin() != nil {
	}
}

// Set records a write of key.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.tree.ReplaceOrInsert(entry{key: key, value: value})
	return b.batch.Set(key, value)
}

// Delete records a removal of key. The key stays hidden from reads of this
// layer even if the parent still holds it.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.tree.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

// Get returns the value of key, nil if it is missing or deleted.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	e, ok := b.lookup(key)
	if !ok {
		return b.parent.Get(key)
	}
	if e.deleted {
		return nil, nil
	}
	return e.value, nil
}

// Has reports whether key holds a value.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	e, ok := b.lookup(key)
	if !ok {
		return b.parent.Has(key)
	}
	return !e.deleted, nil
}

func (b BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	it := b.tree.Get(entry{key: key})
	if it == nil {
		return entry{}, false
	}
	return it.(entry), true
}

// Iterator returns all keys in [start, end) in ascending order, merging this
// layer with its parent. A nil bound is open.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newCacheIterator(collectRange(b.tree, start, end, false), parent, false), nil
}

// ReverseIterator returns all keys in [start, end) in descending order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return newCacheIterator(collectRange(b.tree, start, end, true), parent, true), nil
}

// entry is a single pending operation held by a cache layer. A deleted entry
// shadows the parent value of the same key.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

// Less orders entries by key.
func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
