package params

import (
	"math"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
	"github.com/holiman/uint256"
)

// Default values used until the parameters are stored for the first time.
const (
	DefaultBlocksPerCycle      = 126
	DefaultPaymentPerBlock     = 30000
	DefaultPaymentToBucketRate = 10000
)

// EconomicParameters holds the cycle configuration and the reward
// accumulators. Field order defines the stored layout.
type EconomicParameters struct {
	// FirstBlockTimeInCycle is the start of the current scheduling cycle.
	// Zero means the chain did not process any block yet.
	FirstBlockTimeInCycle aacsys.UnixTime `json:"first_block_time_in_cycle"`
	// BlocksPerCycle is the cycle length in seconds.
	BlocksPerCycle int64 `json:"blocks_per_cycle"`
	// LastBucketFillTime is the time of the last shared pool top up.
	LastBucketFillTime aacsys.UnixTime `json:"last_bucket_fill_time"`
	// PaymentPerBlock is credited to the producer of each block.
	PaymentPerBlock int64 `json:"payment_per_block"`
	// PaymentToBucketRate is added to the shared pool for each second.
	PaymentToBucketRate int64 `json:"payment_to_bucket_rate"`
	// SharedBucket is the claimable shared pool balance.
	SharedBucket int64 `json:"shared_bucket"`
}

// DefaultParameters returns the parameters of a chain that did not store
// its own yet.
func DefaultParameters() EconomicParameters {
	return EconomicParameters{
		BlocksPerCycle:      DefaultBlocksPerCycle,
		PaymentPerBlock:     DefaultPaymentPerBlock,
		PaymentToBucketRate: DefaultPaymentToBucketRate,
	}
}

// Marshal serializes the parameters.
func (p *EconomicParameters) Marshal() ([]byte, error) {
	return codec.Marshal(p)
}

// Unmarshal loads serialized parameters.
func (p *EconomicParameters) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, p)
}

// Validate returns an error if any of the values cannot be used.
func (p *EconomicParameters) Validate() error {
	if err := p.FirstBlockTimeInCycle.Validate(); err != nil {
		return errors.Wrap(err, "first block time in cycle")
	}
	if err := p.LastBucketFillTime.Validate(); err != nil {
		return errors.Wrap(err, "last bucket fill time")
	}
	if p.BlocksPerCycle <= 0 {
		return errors.Wrap(errors.ErrState, "blocks per cycle must be positive")
	}
	if p.PaymentPerBlock < 0 {
		return errors.Wrap(errors.ErrAmount, "negative payment per block")
	}
	if p.PaymentToBucketRate < 0 {
		return errors.Wrap(errors.ErrAmount, "negative payment to bucket rate")
	}
	if p.SharedBucket < 0 {
		return errors.Wrap(errors.ErrAmount, "negative shared bucket")
	}
	return nil
}

// FillBucket tops up the shared pool for the time elapsed since the last
// fill and returns the added amount. Time going backwards is reported as
// ErrState and an amount that does not fit the pool as ErrOverflow. The
// parameters are modified only on success.
func (p *EconomicParameters) FillBucket(now aacsys.UnixTime) (int64, error) {
	delta, err := now.Since(p.LastBucketFillTime)
	if err != nil {
		return 0, errors.Wrap(err, "bucket fill time")
	}

	added := new(uint256.Int).Mul(uint256.NewInt(uint64(delta)), uint256.NewInt(uint64(p.PaymentToBucketRate)))
	total := new(uint256.Int).Add(added, uint256.NewInt(uint64(p.SharedBucket)))
	if !total.IsUint64() || total.Uint64() > math.MaxInt64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d seconds at rate %d", delta, p.PaymentToBucketRate)
	}

	p.SharedBucket = int64(total.Uint64())
	p.LastBucketFillTime = now
	return int64(added.Uint64()), nil
}
