package currency

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

const optKey = "currency"

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ aacsys.Initializer = Initializer{}

// FromGenesis will parse initial balances from genesis and save them to
// the database.
func (Initializer) FromGenesis(opts aacsys.Options, db aacsys.KVStore) error {
	var balances []Balance
	if err := opts.ReadOptions(optKey, &balances); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewBucket()
	for i := range balances {
		bal := &balances[i]
		if obj, err := bucket.Get(db, []byte(bal.Owner)); err != nil {
			return err
		} else if obj != nil {
			return errors.Wrapf(errors.ErrDuplicate, "balance of %s", bal.Owner)
		}
		if err := bucket.Put(db, bal); err != nil {
			return errors.Wrapf(err, "balance %d", i)
		}
	}
	return nil
}
