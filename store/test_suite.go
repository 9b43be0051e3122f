package store

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/weavetest/assert"
)

// TestSuite runs the same set of checks against any CacheableKVStore
// implementation. The in-memory btree store and the iavl adapter share it.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh, empty store and a function that
// releases all resources it holds.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// NewTestSuite returns a suite that tests stores built by given constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks of writing through cache wraps.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("producer1"), []byte("active")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// a cache sees the data of its parent
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writes are only visible in the cache until written
	k2, v2 := []byte("producer2"), []byte("inactive")
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)
	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k2, v2, true)

	// discarded changes never reach the parent
	k3, v3 := []byte("producer3"), []byte("active")
	discarded := base.CacheWrap()
	assert.Nil(t, discarded.Set(k3, v3))
	assert.Nil(t, discarded.Delete(k))
	discarded.Discard()
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k3, nil, false)

	// deletes are applied on write
	deleting := base.CacheWrap()
	assert.Nil(t, deleting.Delete(k))
	s.AssertGetHas(t, deleting, k, nil, false)
	s.AssertGetHas(t, base, k, v, true)
	assert.Nil(t, deleting.Write())
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
}

// CacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := seqKeys(4)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1], []byte("a")), SetOp(ks[2], []byte("b"))},
			childOps:      []Op{SetOp(ks[1], []byte("c")), SetOp(ks[3], []byte("d")), DelOp(ks[2])},
			parentQueries: []Model{Pair(ks[1], []byte("a")), Pair(ks[2], []byte("b")), Pair(ks[3], nil)},
			childQueries:  []Model{Pair(ks[1], []byte("c")), Pair(ks[2], nil), Pair(ks[3], []byte("d"))},
		},
		"delete then set again": {
			parentOps:     []Op{SetOp(ks[0], []byte("a"))},
			childOps:      []Op{DelOp(ks[0]), SetOp(ks[0], []byte("b"))},
			parentQueries: []Model{Pair(ks[0], []byte("a"))},
			childQueries:  []Model{Pair(ks[0], []byte("b"))},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				assert.Nil(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				assert.Nil(t, op.Apply(child))
			}

			for _, q := range tc.parentQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			assert.Nil(t, child.Write())
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// Iteration checks that range queries in both directions combine the cache
// with its parent.
func (s *TestSuite) Iteration(t *testing.T) {
	ks := seqKeys(10)
	m := func(i int, v string) Model { return Pair(ks[i], []byte(v)) }

	cases := map[string]iterCase{
		"child only": {
			child: makeSetOps(m(1, "a"), m(3, "b"), m(5, "c")),
			queries: []rangeQuery{
				{nil, nil, false, []Model{m(1, "a"), m(3, "b"), m(5, "c")}},
				{ks[2], ks[5], false, []Model{m(3, "b")}},
				{nil, nil, true, []Model{m(5, "c"), m(3, "b"), m(1, "a")}},
				{ks[1], ks[5], true, []Model{m(3, "b"), m(1, "a")}},
			},
		},
		"parent only": {
			pre: makeSetOps(m(1, "a"), m(3, "b"), m(5, "c")),
			queries: []rangeQuery{
				{nil, nil, false, []Model{m(1, "a"), m(3, "b"), m(5, "c")}},
				{ks[3], nil, false, []Model{m(3, "b"), m(5, "c")}},
				{nil, ks[3], true, []Model{m(1, "a")}},
			},
		},
		"interleaved": {
			pre:   makeSetOps(m(0, "a"), m(2, "b"), m(4, "c")),
			child: makeSetOps(m(1, "d"), m(3, "e")),
			queries: []rangeQuery{
				{nil, nil, false, []Model{m(0, "a"), m(1, "d"), m(2, "b"), m(3, "e"), m(4, "c")}},
				{nil, nil, true, []Model{m(4, "c"), m(3, "e"), m(2, "b"), m(1, "d"), m(0, "a")}},
				{ks[1], ks[4], true, []Model{m(3, "e"), m(2, "b"), m(1, "d")}},
			},
		},
		"child shadows and deletes parent data": {
			pre:   makeSetOps(m(0, "a"), m(2, "b"), m(4, "c"), m(6, "d")),
			child: append(makeSetOps(m(2, "x"), m(7, "y")), makeDelOps(m(0, ""), m(4, ""), m(5, ""))...),
			queries: []rangeQuery{
				{nil, nil, false, []Model{m(2, "x"), m(6, "d"), m(7, "y")}},
				{nil, nil, true, []Model{m(7, "y"), m(6, "d"), m(2, "x")}},
				{nil, ks[2], false, nil},
				{ks[3], ks[6], true, nil},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

// AssertGetHas checks that both Get and Has agree on the stored value.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	if !bytes.Equal(val, got) {
		t.Fatalf("want %q under %q, got %q", val, key, got)
	}
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func seqKeys(count int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = []byte(fmt.Sprintf("key-%03d", i))
	}
	return res
}

type iterCase struct {
	pre     []Op
	child   []Op
	queries []rangeQuery
}

func (i iterCase) verify(t testing.TB, base CacheableKVStore) {
	t.Helper()
	for _, op := range i.pre {
		assert.Nil(t, op.Apply(base))
	}
	child := base.CacheWrap()
	for _, op := range i.child {
		assert.Nil(t, op.Apply(child))
	}

	for _, q := range i.queries {
		var (
			iter Iterator
			err  error
		)
		if q.reverse {
			iter, err = child.ReverseIterator(q.start, q.end)
		} else {
			iter, err = child.Iterator(q.start, q.end)
		}
		assert.Nil(t, err)

		for n, want := range q.expected {
			key, value, err := iter.Next()
			assert.Nil(t, err)
			if !bytes.Equal(want.Key, key) {
				t.Fatalf("want key %d to be %q, got %q", n, want.Key, key)
			}
			assert.Equal(t, want.Value, value)
		}
		if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
			t.Fatalf("want ErrIteratorDone, got %+v", err)
		}
		iter.Release()
	}
}

type rangeQuery struct {
	start    []byte
	end      []byte
	reverse  bool
	expected []Model
}

func makeSetOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func makeDelOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
