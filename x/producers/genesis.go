package producers

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ aacsys.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial producer records from genesis and save
// them to the database.
func (*Initializer) FromGenesis(opts aacsys.Options, db aacsys.KVStore) error {
	var records []Producer
	if err := opts.ReadOptions("producers", &records); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i := range records {
		p := &records[i]
		if obj, err := bucket.Get(db, []byte(p.Owner)); err != nil {
			return err
		} else if obj != nil {
			return errors.Wrapf(errors.ErrDuplicate, "producer %s", p.Owner)
		}
		if err := bucket.Put(db, p); err != nil {
			return errors.Wrapf(err, "producer %d", i)
		}
	}
	return nil
}
