package params

import (
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/gconf"
)

// PkgName is the key the parameters are stored under, both in the
// configuration store and in the genesis "conf" section.
const PkgName = "params"

// LoadOrDefault returns the stored parameters or the default ones if nothing
// was stored yet.
func LoadOrDefault(db gconf.ReadStore) (*EconomicParameters, error) {
	var p EconomicParameters
	switch err := gconf.Load(db, PkgName, &p); {
	case errors.ErrNotFound.Is(err):
		p = DefaultParameters()
		return &p, nil
	case err != nil:
		return nil, errors.Wrap(err, "load economic parameters")
	}
	return &p, nil
}

// Save validates and stores the parameters.
func Save(db gconf.Store, p *EconomicParameters) error {
	if err := gconf.Save(db, PkgName, p); err != nil {
		return errors.Wrap(err, "save economic parameters")
	}
	return nil
}
