package store

import (
	"bytes"

	"github.com/aacio/aacsys/errors"
	"github.com/google/btree"
)

// collectRange returns the cached entries within [start, end) in iteration
// order. Writes are not allowed while iterating, so a snapshot of the
// cached layer is as good as a live view.
func collectRange(bt *btree.BTree, start, end []byte, descending bool) []entry {
	var items []entry
	collect := func(i btree.Item) bool {
		items = append(items, i.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		bt.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	if descending {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items
}

// cacheIterator merges the cached items with the backing store iterator.
// Cached values shadow the parent ones and deleted items hide them.
type cacheIterator struct {
	items      []entry
	parent     Iterator
	descending bool

	// parent element read but not yet returned
	pkey, pvalue []byte
	peeked       bool
	parentDone   bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []entry, parent Iterator, descending bool) *cacheIterator {
	return &cacheIterator{
		items:      items,
		parent:     parent,
		descending: descending,
	}
}

// Next returns the next key/value pair in the iteration order or
// ErrIteratorDone.
func (c *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.peekParent(); err != nil {
			return nil, nil, err
		}

		if len(c.items) == 0 {
			if c.parentDone {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
			}
			c.peeked = false
			return c.pkey, c.pvalue, nil
		}

		local := c.items[0]
		if !c.parentDone {
			cmp := bytes.Compare(local.key, c.pkey)
			if c.descending {
				cmp = -cmp
			}
			switch {
			case cmp > 0:
				// parent goes first
				c.peeked = false
				return c.pkey, c.pvalue, nil
			case cmp == 0:
				// shadowed by the cache
				c.peeked = false
			}
		}

		c.items = c.items[1:]
		if !local.deleted {
			return local.key, local.value, nil
		}
	}
}

func (c *cacheIterator) peekParent() error {
	if c.peeked || c.parentDone {
		return nil
	}
	k, v, err := c.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		c.parentDone = true
		return nil
	case err != nil:
		return err
	}
	c.pkey, c.pvalue, c.peeked = k, v, true
	return nil
}

// Release releases the Iterator.
func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}
