package orm

import (
	"github.com/aacio/aacsys"
)

// Object is a single bucket entry. The bucket prefixes Key with its name to
// build the database key and serializes Value as the database value.
type Object interface {
	Keyed
	Cloneable
	// Validate is called before every save.
	aacsys.Validater
	Value() aacsys.Persistent
}

// Keyed is an entity with a settable primary key.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an empty copy that a stored value can be loaded into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is a model value that SimpleObj can carry.
type CloneableData interface {
	aacsys.Validater
	aacsys.Persistent
	Copy() CloneableData
}
