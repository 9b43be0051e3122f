package producers

import (
	"encoding/binary"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/orm"
)

const (
	// BucketName is where we store the producers
	BucketName = "producer"
	// IndexVotes orders the producers by vote weight
	IndexVotes = "votes"

	maxAccountNameLength = 12
)

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a Bucket with default name and the vote index.
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Producer{})).
		WithNativeIndex(IndexVotes, votesIndexer)
	return Bucket{Bucket: b}
}

// votesIndexer builds a key that sorts by the vote weight and then by the
// owner name. The name is padded to a fixed length, so that it compares the
// way names do.
func votesIndexer(obj orm.Object) ([]byte, error) {
	p, err := AsProducer(obj)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.Wrap(errors.ErrModel, "missing producer")
	}
	res := make([]byte, 8+maxAccountNameLength)
	binary.BigEndian.PutUint64(res, p.TotalVotes)
	copy(res[8:], p.Owner)
	return res, nil
}

// GetProducer returns the record of given owner or ErrUnknownProducer.
func (b Bucket) GetProducer(db aacsys.ReadOnlyKVStore, owner aacsys.AccountName) (*Producer, error) {
	obj, err := b.Get(db, []byte(owner))
	if err != nil {
		return nil, err
	}
	p, err := AsProducer(obj)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.Wrap(ErrUnknownProducer, string(owner))
	}
	return p, nil
}

// Put stores the record under its owner name.
func (b Bucket) Put(db aacsys.KVStore, p *Producer) error {
	return b.Save(db, orm.NewSimpleObj([]byte(p.Owner), p))
}

// ByVotes returns the producers from the most to the least voted one.
// Producers with equal votes are returned in descending owner name order.
// Records are read lazily, one per Next call.
func (b Bucket) ByVotes(db aacsys.ReadOnlyKVStore) (*VotesIterator, error) {
	it, err := b.IndexScan(db, IndexVotes, true)
	if err != nil {
		return nil, err
	}
	return &VotesIterator{it: it}, nil
}

// VotesIterator returns producer records in vote weight order.
type VotesIterator struct {
	it *orm.ObjectIterator
}

// Next returns the next record or ErrIteratorDone.
func (v *VotesIterator) Next() (*Producer, error) {
	obj, err := v.it.Next()
	if err != nil {
		return nil, err
	}
	return AsProducer(obj)
}

// Release releases the underlying iterator.
func (v *VotesIterator) Release() {
	v.it.Release()
}
