package app

import "github.com/aacio/aacsys/errors"

var (
	// ErrAmbiguousDispatch is raised when the same action is registered
	// more than once.
	ErrAmbiguousDispatch = errors.Register(400, "ambiguous dispatch")
	// ErrGenesis is returned when the genesis cannot be loaded.
	ErrGenesis = errors.Register(401, "invalid genesis")
)
