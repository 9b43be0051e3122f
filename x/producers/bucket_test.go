package producers

import (
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/store"
	"github.com/aacio/aacsys/weavetest/assert"
)

func TestGetProducer(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()

	_, err := b.GetProducer(db, "prod1")
	assert.IsErr(t, ErrUnknownProducer, err)

	want := &Producer{Owner: "prod1", TotalVotes: 10, Active: true, ProducerKey: []byte{1, 2}}
	assert.Nil(t, b.Put(db, want))
	got, err := b.GetProducer(db, "prod1")
	assert.Nil(t, err)
	assert.Equal(t, want, got)

	err = b.Put(db, &Producer{Owner: "Bad-Name"})
	assert.IsErr(t, errors.ErrInput, err)
	err = b.Put(db, &Producer{Owner: "prod2", PerBlockPayments: -1})
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestByVotes(t *testing.T) {
	cases := map[string]struct {
		producers []*Producer
		want      []aacsys.AccountName
	}{
		"empty registry": {},
		"descending votes": {
			producers: []*Producer{
				{Owner: "bob", TotalVotes: 20},
				{Owner: "alice", TotalVotes: 30, Active: true},
				{Owner: "carol", TotalVotes: 10, Active: true},
			},
			want: []aacsys.AccountName{"alice", "bob", "carol"},
		},
		"equal votes in descending name order": {
			producers: []*Producer{
				{Owner: "ab", TotalVotes: 5},
				{Owner: "ab1", TotalVotes: 5},
				{Owner: "b", TotalVotes: 5},
				{Owner: "a.b", TotalVotes: 5},
				{Owner: "zed", TotalVotes: 6},
			},
			want: []aacsys.AccountName{"zed", "b", "ab1", "ab", "a.b"},
		},
		"large votes": {
			producers: []*Producer{
				{Owner: "small", TotalVotes: 1 << 8},
				{Owner: "huge", TotalVotes: 1 << 62},
				{Owner: "medium", TotalVotes: 1 << 32},
			},
			want: []aacsys.AccountName{"huge", "medium", "small"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewBucket()
			for _, p := range tc.producers {
				assert.Nil(t, b.Put(db, p))
			}
			assert.Equal(t, tc.want, consumeOwners(t, b, db))
		})
	}
}

func TestByVotesFollowsUpdates(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	assert.Nil(t, b.Put(db, &Producer{Owner: "alice", TotalVotes: 10}))
	assert.Nil(t, b.Put(db, &Producer{Owner: "bob", TotalVotes: 20}))
	assert.Equal(t, []aacsys.AccountName{"bob", "alice"}, consumeOwners(t, b, db))

	p, err := b.GetProducer(db, "alice")
	assert.Nil(t, err)
	p.TotalVotes = 30
	assert.Nil(t, b.Put(db, p))
	assert.Equal(t, []aacsys.AccountName{"alice", "bob"}, consumeOwners(t, b, db))

	// changes made in a cache are visible in it only
	cache := db.CacheWrap()
	assert.Nil(t, b.Put(cache, &Producer{Owner: "carol", TotalVotes: 25}))
	assert.Equal(t, []aacsys.AccountName{"alice", "carol", "bob"}, consumeOwners(t, b, cache))
	assert.Equal(t, []aacsys.AccountName{"alice", "bob"}, consumeOwners(t, b, db))
}

func consumeOwners(t testing.TB, b Bucket, db aacsys.ReadOnlyKVStore) []aacsys.AccountName {
	t.Helper()
	it, err := b.ByVotes(db)
	assert.Nil(t, err)
	defer it.Release()

	var owners []aacsys.AccountName
	for {
		p, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return owners
		}
		assert.Nil(t, err)
		owners = append(owners, p.Owner)
	}
}
