package orm

import (
	"github.com/aacio/aacsys/errors"
)

// ErrInvalidIndex means an index lookup used an unknown index name or the
// indexer produced an unusable key. Codes 100 to 109 belong to this package.
var ErrInvalidIndex = errors.Register(100, "invalid index")
