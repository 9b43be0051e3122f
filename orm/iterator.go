package orm

import (
	"github.com/aacio/aacsys"
)

// ObjectIterator returns bucket objects one by one. Each call to Next reads
// only what is needed to return a single object.
type ObjectIterator struct {
	it   aacsys.Iterator
	load func(key, value []byte) (Object, error)
}

// Next returns the next object or ErrIteratorDone.
func (i *ObjectIterator) Next() (Object, error) {
	key, value, err := i.it.Next()
	if err != nil {
		return nil, err
	}
	return i.load(key, value)
}

// Release releases the underlying database iterator.
func (i *ObjectIterator) Release() {
	i.it.Release()
}
