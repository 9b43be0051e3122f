package currency

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/orm"
)

// BucketName is where we store the balances
const BucketName = "balance"

// Balance is the amount of tokens held by an account.
type Balance struct {
	Owner  aacsys.AccountName `json:"owner"`
	Amount int64              `json:"amount"`
}

var _ orm.CloneableData = (*Balance)(nil)

func (b *Balance) Marshal() ([]byte, error) { return codec.Marshal(b) }

func (b *Balance) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, b) }

// Validate returns an error if the balance cannot be stored.
func (b *Balance) Validate() error {
	if err := b.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if b.Amount < 0 {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	return nil
}

// Copy returns a copy of the balance.
func (b *Balance) Copy() orm.CloneableData {
	cpy := *b
	return &cpy
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Balance{})),
	}
}

// GetOrCreate returns the balance of given account. An account that never
// held any tokens has an empty balance.
func (b Bucket) GetOrCreate(db aacsys.ReadOnlyKVStore, owner aacsys.AccountName) (*Balance, error) {
	obj, err := b.Get(db, []byte(owner))
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return &Balance{Owner: owner}, nil
	}
	bal, ok := obj.Value().(*Balance)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return bal, nil
}

// Put stores the balance under its owner name.
func (b Bucket) Put(db aacsys.KVStore, bal *Balance) error {
	return b.Save(db, orm.NewSimpleObj([]byte(bal.Owner), bal))
}
