package params

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ aacsys.Initializer = (*Initializer)(nil)

// FromGenesis stores the parameters declared in the genesis "conf" section.
// Values not declared there keep their defaults. Without any declaration
// nothing is stored and the defaults apply lazily.
func (*Initializer) FromGenesis(opts aacsys.Options, db aacsys.KVStore) error {
	p := DefaultParameters()
	err := gconf.InitConfig(db, opts, PkgName, &p)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
