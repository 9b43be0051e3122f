package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// Genesis file format
type Genesis struct {
	ChainID     string          `json:"chain_id"`
	GenesisTime aacsys.UnixTime `json:"genesis_time"`
	AppState    aacsys.Options  `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(ErrGenesis, "read %s: %s", filePath, err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(ErrGenesis, "unmarshal %s: %s", filePath, err)
	}
	if gen.ChainID == "" {
		return nil, errors.Wrap(ErrGenesis, "missing chain id")
	}
	return &gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...aacsys.Initializer) aacsys.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []aacsys.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts aacsys.Options, db aacsys.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}

//------- storing chainID ---------

const chainIDKey = "_i:chainID"

// loadChainID returns the chain id stored if any
func loadChainID(db aacsys.ReadOnlyKVStore) (string, error) {
	v, err := db.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set.
func saveChainID(db aacsys.KVStore, chainID string) error {
	k := []byte(chainIDKey)
	switch has, err := db.Has(k); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case has:
		return errors.Wrap(ErrGenesis, "chain id already set")
	}
	return db.Set(k, []byte(chainID))
}
