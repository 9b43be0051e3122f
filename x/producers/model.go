package producers

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/orm"
)

const maxURLLength = 512

// Producer is the registry record of a block producer. Field order defines
// the stored layout.
type Producer struct {
	Owner aacsys.AccountName `json:"owner"`
	// PerBlockPayments are the accrued and not yet claimed block rewards.
	PerBlockPayments      int64           `json:"per_block_payments"`
	LastProducedBlockTime aacsys.UnixTime `json:"last_produced_block_time"`
	// LastRewardsClaim is zero if the producer never claimed.
	LastRewardsClaim aacsys.UnixTime `json:"last_rewards_claim"`
	TotalVotes       uint64          `json:"total_votes"`
	Active           bool            `json:"active"`
	ProducerKey      []byte          `json:"producer_key"`
	URL              string          `json:"url"`
}

var _ orm.CloneableData = (*Producer)(nil)

// Marshal serializes the record.
func (p *Producer) Marshal() ([]byte, error) {
	return codec.Marshal(p)
}

// Unmarshal loads a serialized record.
func (p *Producer) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, p)
}

// Validate returns an error if the record cannot be stored.
func (p *Producer) Validate() error {
	if err := p.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if p.PerBlockPayments < 0 {
		return errors.Wrap(errors.ErrAmount, "negative per block payments")
	}
	if err := p.LastProducedBlockTime.Validate(); err != nil {
		return errors.Wrap(err, "last produced block time")
	}
	if err := p.LastRewardsClaim.Validate(); err != nil {
		return errors.Wrap(err, "last rewards claim")
	}
	if len(p.URL) > maxURLLength {
		return errors.Wrap(errors.ErrInput, "url too long")
	}
	return nil
}

// Copy returns a deep copy of the record.
func (p *Producer) Copy() orm.CloneableData {
	cpy := *p
	cpy.ProducerKey = append([]byte(nil), p.ProducerKey...)
	return &cpy
}

// AsProducer extracts the record from an object loaded from the producer
// bucket.
func AsProducer(obj orm.Object) (*Producer, error) {
	if obj == nil || obj.Value() == nil {
		return nil, nil
	}
	p, ok := obj.Value().(*Producer)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return p, nil
}
