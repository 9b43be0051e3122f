/*
Package codec holds the binary encoding shared by every model persisted in
the store and every action payload. Values are encoded with go-amino in its
bare binary form, so the field order of a struct defines its wire layout.
*/
package codec

import (
	"github.com/aacio/aacsys/errors"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Codec returns the shared amino codec. It can be used to register
// interface implementations before any value is encoded.
func Codec() *amino.Codec {
	return cdc
}

// Marshal serializes given value.
func Marshal(o interface{}) ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrap(errors.ErrType, err.Error())
	}
	return bz, nil
}

// Unmarshal deserializes data into ptr, which must be a pointer.
func Unmarshal(data []byte, ptr interface{}) error {
	if err := cdc.UnmarshalBinaryBare(data, ptr); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// MarshalJSONIndent returns a human readable representation of given value.
func MarshalJSONIndent(o interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSONIndent(o, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrType, err.Error())
	}
	return bz, nil
}
