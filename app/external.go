package app

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Actions of the system contract whose semantics are provided by the host.
const (
	ActionDelegateBW   aacsys.ActionName = "delegatebw"
	ActionUndelegateBW aacsys.ActionName = "undelegatebw"
	ActionRefund       aacsys.ActionName = "refund"
	ActionRegProxy     aacsys.ActionName = "regproxy"
	ActionUnregProxy   aacsys.ActionName = "unregproxy"
	ActionVoteProducer aacsys.ActionName = "voteproducer"
)

const maxVotedProducers = 30

// DelegateBWMsg stakes tokens for the bandwidth of the receiver.
type DelegateBWMsg struct {
	From         aacsys.AccountName
	Receiver     aacsys.AccountName
	StakeNet     int64
	StakeCPU     int64
	StakeStorage int64
}

func (m *DelegateBWMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *DelegateBWMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *DelegateBWMsg) Validate() error {
	return validateStake(m.From, m.Receiver, m.StakeNet, m.StakeCPU, m.StakeStorage)
}

// UndelegateBWMsg releases staked tokens.
type UndelegateBWMsg struct {
	From           aacsys.AccountName
	Receiver       aacsys.AccountName
	UnstakeNet     int64
	UnstakeCPU     int64
	UnstakeStorage int64
}

func (m *UndelegateBWMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *UndelegateBWMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *UndelegateBWMsg) Validate() error {
	return validateStake(m.From, m.Receiver, m.UnstakeNet, m.UnstakeCPU, m.UnstakeStorage)
}

func validateStake(from, receiver aacsys.AccountName, amounts ...int64) error {
	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	var total int64
	for _, a := range amounts {
		if a < 0 {
			return errors.Wrap(errors.ErrAmount, "negative stake")
		}
		total += a
	}
	if total == 0 {
		return errors.Wrap(errors.ErrAmount, "nothing staked")
	}
	return nil
}

// RefundMsg returns the tokens whose unstaking completed.
type RefundMsg struct {
	Owner aacsys.AccountName
}

func (m *RefundMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *RefundMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }
func (m *RefundMsg) Validate() error            { return errors.Wrap(m.Owner.Validate(), "owner") }

// RegProxyMsg registers a voting proxy.
type RegProxyMsg struct {
	Proxy aacsys.AccountName
}

func (m *RegProxyMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *RegProxyMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }
func (m *RegProxyMsg) Validate() error            { return errors.Wrap(m.Proxy.Validate(), "proxy") }

// UnregProxyMsg removes a voting proxy.
type UnregProxyMsg struct {
	Proxy aacsys.AccountName
}

func (m *UnregProxyMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *UnregProxyMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }
func (m *UnregProxyMsg) Validate() error            { return errors.Wrap(m.Proxy.Validate(), "proxy") }

// VoteProducerMsg votes for a set of producers, or delegates the vote to a
// proxy.
type VoteProducerMsg struct {
	Voter     aacsys.AccountName
	Proxy     aacsys.AccountName
	Producers []aacsys.AccountName
}

func (m *VoteProducerMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *VoteProducerMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *VoteProducerMsg) Validate() error {
	if err := m.Voter.Validate(); err != nil {
		return errors.Wrap(err, "voter")
	}
	if m.Proxy != "" {
		if len(m.Producers) != 0 {
			return errors.Wrap(errors.ErrInput, "cannot vote for producers and a proxy")
		}
		return errors.Wrap(m.Proxy.Validate(), "proxy")
	}
	if len(m.Producers) > maxVotedProducers {
		return errors.Wrapf(errors.ErrInput, "more than %d producers", maxVotedProducers)
	}
	for i, p := range m.Producers {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "producer %d", i)
		}
		if i > 0 && m.Producers[i-1] >= p {
			return errors.Wrap(errors.ErrInput, "producers must be sorted and unique")
		}
	}
	return nil
}

// SystemHandlers are the host provided implementations of the delegation
// and voting actions. Actions without a handler are rejected.
type SystemHandlers struct {
	DelegateBW   aacsys.Handler
	UndelegateBW aacsys.Handler
	Refund       aacsys.Handler
	RegProxy     aacsys.Handler
	UnregProxy   aacsys.Handler
	VoteProducer aacsys.Handler
}

var notImplemented = aacsys.HandlerFunc(func(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotImplemented, "%T", act)
})

func orNotImplemented(h aacsys.Handler) aacsys.Handler {
	if h == nil {
		return notImplemented
	}
	return h
}
