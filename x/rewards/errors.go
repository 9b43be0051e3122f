package rewards

import "github.com/aacio/aacsys/errors"

var (
	ErrInvalidContext     = errors.Register(300, "invalid execution context")
	ErrInactiveProducer   = errors.Register(301, "producer is not active")
	ErrClaimTooSoon       = errors.Register(302, "rewards already claimed")
	ErrNoRewardsAvailable = errors.Register(303, "no rewards available")
)
