package gconf

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// ReadStore is the part of aacsys.ReadOnlyKVStore that Load needs.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of aacsys.KVStore that Save needs.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// ValidMarshaler is a configuration that can be validated and serialized.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is a configuration that can be deserialized.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is a singleton record owned by one package.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// configKey is the database key of the singleton owned by pkg.
func configKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates src and stores it as the configuration of pkg.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := configKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of given package into dst. It
// returns ErrNotFound when no configuration was saved.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	key := configKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// InitConfig reads the genesis section conf.<pkg> into conf and saves it. It
// returns ErrNotFound if the genesis has no such section.
func InitConfig(db Store, opts aacsys.Options, pkg string, conf Configuration) error {
	var sections aacsys.Options
	if err := opts.ReadOptions("conf", &sections); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if sections[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis has no conf.%s", pkg)
	}
	if err := sections.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
