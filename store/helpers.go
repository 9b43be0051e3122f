package store

import (
	"fmt"

	"github.com/aacio/aacsys/errors"
)

// Model is a single key value pair.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a Model of given key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// SliceIterator iterates over a fixed list of pairs. The list is expected to
// be already sorted in the iteration order.
type SliceIterator struct {
	data []Model
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator returns an iterator over data.
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

// Next returns the next pair or ErrIteratorDone.
func (s *SliceIterator) Next() (key, value []byte, err error) {
	if len(s.data) == 0 {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice iterator")
	}
	m := s.data[0]
	s.data = s.data[1:]
	return m.Key, m.Value, nil
}

// Release drops the remaining pairs.
func (s *SliceIterator) Release() {
	s.data = nil
}

// EmptyKVStore holds no data and ignores all writes. It is the bottom layer
// of MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error) { return nil, nil }

func (EmptyKVStore) Has([]byte) (bool, error) { return false, nil }

func (EmptyKVStore) Set(_, _ []byte) error { return nil }

func (EmptyKVStore) Delete([]byte) error { return nil }

func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// Op is a single write queued in a batch.
type Op struct {
	key   []byte
	value []byte
	del   bool
}

// SetOp returns an operation that writes value under key.
func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

// DelOp returns an operation that removes key.
func DelOp(key []byte) Op {
	return Op{key: key, del: true}
}

// Apply executes the operation against out.
func (o Op) Apply(out SetDeleter) error {
	if o.del {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

func (o Op) String() string {
	if o.del {
		return fmt.Sprintf("del %X", o.key)
	}
	return fmt.Sprintf("set %X=%X", o.key, o.value)
}

// NonAtomicBatch queues operations and applies them one by one on Write. A
// failure in the middle leaves the target partially written, so it must only
// be used on top of in-memory layers.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch that writes to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

// Set queues a write.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

// Delete queues a removal.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies all queued operations in order and empties the batch.
func (b *NonAtomicBatch) Write() error {
	for i, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return errors.Wrapf(err, "batch op %d: %s", i, op)
		}
	}
	b.ops = nil
	return nil
}

// ShowOps returns the queued operations.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
