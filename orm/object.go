package orm

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

var _ Object = (*SimpleObj)(nil)

// SimpleObj pairs a key with a CloneableData value. Model packages wrap
// their values in it instead of implementing Object themselves.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

// NewSimpleObj returns an object holding value under key.
func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Value() aacsys.Persistent {
	return o.value
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Validate requires both the key and the value to be set and runs the value
// validation.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Wrap(errors.ErrEmpty, "key")
	case o.value == nil:
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return o.value.Validate()
}

// Clone returns a deep copy. An empty key stays nil.
func (o *SimpleObj) Clone() Object {
	c := &SimpleObj{value: o.value.Copy()}
	if len(o.key) != 0 {
		c.key = append([]byte(nil), o.key...)
	}
	return c
}
