package producers

import "github.com/aacio/aacsys/errors"

// producers reserves 200~209 error codes

// ErrUnknownProducer is returned when an account is not a registered
// producer.
var ErrUnknownProducer = errors.Register(200, "unknown producer")
