package rewards

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Action names handled by this package.
const (
	ActionOnBlock      aacsys.ActionName = "onblock"
	ActionClaimRewards aacsys.ActionName = "claimrewards"
)

// OnBlockMsg is delivered by the chain for every produced block.
type OnBlockMsg struct {
	Header aacsys.BlockHeader
}

var _ aacsys.Action = (*OnBlockMsg)(nil)

func (m *OnBlockMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *OnBlockMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the header can be accounted.
func (m *OnBlockMsg) Validate() error {
	return errors.Wrap(m.Header.Validate(), "header")
}

// ClaimRewardsMsg pays the accrued rewards out to the producer.
type ClaimRewardsMsg struct {
	Owner aacsys.AccountName
}

var _ aacsys.Action = (*ClaimRewardsMsg)(nil)

func (m *ClaimRewardsMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *ClaimRewardsMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the message is well formed.
func (m *ClaimRewardsMsg) Validate() error {
	return errors.Wrap(m.Owner.Validate(), "owner")
}
