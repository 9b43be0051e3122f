/*
Package orm maps typed models onto the key value store.

The state is split into buckets. A bucket holds one model type under its own
key prefix, may carry native secondary indexes and supports lookups by
primary key as well as ordered scans by primary key or index value.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a prefixed section of the state that stores objects cloned from
// proto. Model packages embed it in a type safe wrapper.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes map[string]*nativeIndex
}

// NewBucket returns a bucket stored under "<name>:". It panics if the name is
// not 3 to 10 lowercase letters or underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name: %q", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of this bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey returns the database key of an object stored under key. The result
// never shares memory with the bucket prefix.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

// Get one element. Returns nil if no object is stored under given key.
func (b Bucket) Get(db aacsys.ReadOnlyKVStore, key []byte) (Object, error) {
	bz, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, errors.Wrap(err, "db get")
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse decodes a stored value into a new object with given key.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(err, "parse %s", b.name)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates the model, updates all indexes and writes it.
func (b Bucket) Save(db aacsys.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	bz, err := model.Value().Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	if err := b.updateIndexes(db, model.Key(), model); err != nil {
		return err
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete removes the object stored under key together with its index
// entries.
func (b Bucket) Delete(db aacsys.KVStore, key []byte) error {
	if err := b.updateIndexes(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

func (b Bucket) updateIndexes(db aacsys.KVStore, key []byte, model Object) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil {
		return err
	}
	if prev == nil && model == nil {
		// nothing to delete
		return nil
	}
	for name, idx := range b.indexes {
		if err := idx.Update(db, prev, model); err != nil {
			return errors.Wrapf(err, "index %s", name)
		}
	}
	return nil
}

// WithNativeIndex returns a copy of the bucket that maintains an index named
// name. It panics if the name is already taken.
func (b Bucket) WithNativeIndex(name string, indexer Indexer) Bucket {
	if _, ok := b.indexes[name]; ok {
		panic(fmt.Sprintf("index %s registered twice", name))
	}

	indexes := make(map[string]*nativeIndex, len(b.indexes)+1)
	for n, i := range b.indexes {
		indexes[n] = i
	}
	indexes[name] = newNativeIndex(b.name+"_"+name, indexer)
	b.indexes = indexes
	return b
}

// All returns an iterator over all objects of this bucket in the primary key
// order.
func (b Bucket) All(db aacsys.ReadOnlyKVStore) (*ObjectIterator, error) {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return nil, errors.Wrap(err, "db iterator")
	}
	return &ObjectIterator{
		it: it,
		load: func(key, value []byte) (Object, error) {
			return b.Parse(key[len(b.prefix):], value)
		},
	}, nil
}

// IndexScan returns an iterator over all objects of this bucket, ordered by
// the value of the named index. Objects are loaded lazily, one per Next call.
func (b Bucket) IndexScan(db aacsys.ReadOnlyKVStore, name string, reverse bool) (*ObjectIterator, error) {
	idx, ok := b.indexes[name]
	if !ok {
		return nil, errors.Wrap(ErrInvalidIndex, name)
	}
	it, err := idx.Scan(db, reverse)
	if err != nil {
		return nil, err
	}
	return &ObjectIterator{
		it: it,
		load: func(key, _ []byte) (Object, error) {
			obj, err := b.Get(db, key)
			if err != nil {
				return nil, err
			}
			if obj == nil {
				return nil, errors.Wrapf(errors.ErrNotFound, "index %s references missing %X", name, key)
			}
			return obj, nil
		},
	}, nil
}

// prefixEnd returns the smallest key that is greater than all keys starting
// with given prefix. Nil means there is no such key.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
