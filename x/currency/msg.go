package currency

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Action names handled by this package.
const (
	ActionTransfer aacsys.ActionName = "transfer"
	ActionIssue    aacsys.ActionName = "issue"
)

const maxMemoLength = 256

// TransferMsg moves tokens between two accounts.
type TransferMsg struct {
	From     aacsys.AccountName
	To       aacsys.AccountName
	Quantity int64
	Memo     string
}

var _ aacsys.Action = (*TransferMsg)(nil)

func (m *TransferMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *TransferMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the message is well formed.
func (m *TransferMsg) Validate() error {
	if err := m.From.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.From == m.To {
		return errors.Wrap(errors.ErrInput, "cannot transfer to self")
	}
	if m.Quantity <= 0 {
		return errors.Wrap(errors.ErrAmount, "quantity must be positive")
	}
	if len(m.Memo) > maxMemoLength {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	return nil
}

// IssueMsg creates new tokens.
type IssueMsg struct {
	To       aacsys.AccountName
	Quantity int64
	Memo     string
}

var _ aacsys.Action = (*IssueMsg)(nil)

func (m *IssueMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *IssueMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the message is well formed.
func (m *IssueMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Quantity <= 0 {
		return errors.Wrap(errors.ErrAmount, "quantity must be positive")
	}
	if len(m.Memo) > maxMemoLength {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	return nil
}
