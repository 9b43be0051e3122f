package orm

import (
	"bytes"
	"math"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// Indexer calculates the secondary index value for a given object. The
// index orders objects by the bytes of that value, so numbers must be
// encoded big endian.
type Indexer func(Object) ([]byte, error)

const nativeIdxPrefix = "_x."

// nativeIndex is an index implementation that is using a database native
// storage and query in order to maintain and provide access to an index.
//
// Each indexed object is represented by a single empty database entry, with
// the key built from the index name, the indexed value and the object key.
// Iterating over the database keys yields objects ordered by the indexed
// value and then by the object key.
type nativeIndex struct {
	name    string
	indexer Indexer
}

func newNativeIndex(name string, indexer Indexer) *nativeIndex {
	return &nativeIndex{
		name:    name,
		indexer: indexer,
	}
}

// Update updates the index. It should be called when any of the bucket
// entities has changed in the store.
//
// prev == nil means insert
// next == nil means delete
// both == nil is error
// if both != nil and prev.Key() != next.Key() this is an error
func (ix *nativeIndex) Update(db aacsys.KVStore, prev Object, next Object) error {
	if next == nil && prev == nil {
		return errors.Wrap(errors.ErrInput, "update requires at least one non-nil object")
	}
	if next != nil && prev != nil {
		if !bytes.Equal(next.Key(), prev.Key()) {
			return errors.Wrap(errors.ErrState, "previous key is not the same as the new one")
		}
	}

	if prev != nil {
		idxKey, err := ix.entryKey(prev)
		if err != nil {
			return err
		}
		if err := db.Delete(idxKey); err != nil {
			return errors.Wrap(err, "db delete")
		}
	}
	if next != nil {
		idxKey, err := ix.entryKey(next)
		if err != nil {
			return err
		}
		if err := db.Set(idxKey, []byte{}); err != nil {
			return errors.Wrap(err, "db set")
		}
	}
	return nil
}

func (ix *nativeIndex) entryKey(obj Object) ([]byte, error) {
	value, err := ix.indexer(obj)
	if err != nil {
		return nil, errors.Wrap(err, "indexer")
	}
	key, err := packNativeIdxKey([][]byte{[]byte(ix.name), value, obj.Key()})
	if err != nil {
		return nil, errors.Wrap(err, "build index key")
	}
	return key, nil
}

// Scan returns an iterator over the keys of all indexed objects, ordered
// by the indexed value. Returned values are always nil.
func (ix *nativeIndex) Scan(db aacsys.ReadOnlyKVStore, reverse bool) (aacsys.Iterator, error) {
	start, err := packNativeIdxKey([][]byte{[]byte(ix.name)})
	if err != nil {
		return nil, errors.Wrap(err, "build index key")
	}
	// MaxUint8 is not used by serializer so we can use it as the maximum
	// value guard.
	end := append(append([]byte(nil), start...), math.MaxUint8)

	var it aacsys.Iterator
	if reverse {
		it, err = db.ReverseIterator(start, end)
	} else {
		it, err = db.Iterator(start, end)
	}
	if err != nil {
		return nil, errors.Wrap(err, "db iterator")
	}
	return &nativeIndexIterator{dbit: it}, nil
}

// nativeIndexIterator wraps a database iterator and parse results to provide
// indexed entities keys.
type nativeIndexIterator struct {
	dbit aacsys.Iterator
}

func (it *nativeIndexIterator) Release() {
	it.dbit.Release()
}

func (it *nativeIndexIterator) Next() ([]byte, []byte, error) {
	key, _, err := it.dbit.Next()
	if err != nil {
		return nil, nil, err
	}
	chunks, err := unpackNativeIdxKey(key)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unpack native index key")
	}
	return chunks[len(chunks)-1], nil, nil
}

// packNativeIdxKey serialize a native index key from a set of values to a
// single key. This process can be reversed using unpackNativeIdxKey function.
//
// When serialized, each chunk is prefixed with its length, encoded as a uint8
// value.  If a key is created from 3 chunks, "aaa", "" and "c", that key
// representation is:
//
//	_x.<3>aaa<0><1>c
//
// Each chunk can be at most 254 bytes long.
func packNativeIdxKey(chunks [][]byte) ([]byte, error) {
	size := len(nativeIdxPrefix)
	for _, b := range chunks {
		size += len(b) + 1
	}
	res := make([]byte, 0, size)
	res = append(res, nativeIdxPrefix...)

	for _, b := range chunks {
		// MaxUint8 is reserved for the search purpose.
		if len(b) > math.MaxUint8-1 {
			return nil, errors.Wrapf(errors.ErrInput, "no chunk can be bigger than %d bytes", math.MaxUint8-1)
		}
		res = append(res, uint8(len(b)))
		res = append(res, b...)
	}
	return res, nil
}

// unpackNativeIdxKey decodes native index key and extracts all chunks that
// compose that key.
func unpackNativeIdxKey(b []byte) ([][]byte, error) {
	if !bytes.HasPrefix(b, []byte(nativeIdxPrefix)) {
		return nil, errors.Wrap(errors.ErrInput, "not a native index key")
	}
	b = b[len(nativeIdxPrefix):]
	res := make([][]byte, 0, 3)
	for len(b) > 0 {
		size := int(b[0])
		if len(b) < 1+size {
			return nil, errors.Wrap(errors.ErrInput, "malformed offset")
		}
		res = append(res, b[1:1+size])
		b = b[1+size:]
	}
	return res, nil
}
