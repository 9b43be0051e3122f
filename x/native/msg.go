package native

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Action names handled by this package.
const (
	ActionNewAccount   aacsys.ActionName = "newaccount"
	ActionUpdateAuth   aacsys.ActionName = "updateauth"
	ActionDeleteAuth   aacsys.ActionName = "deleteauth"
	ActionLinkAuth     aacsys.ActionName = "linkauth"
	ActionUnlinkAuth   aacsys.ActionName = "unlinkauth"
	ActionPostRecovery aacsys.ActionName = "postrecovery"
	ActionPassRecovery aacsys.ActionName = "passrecovery"
	ActionVetoRecovery aacsys.ActionName = "vetorecovery"
	ActionOnError      aacsys.ActionName = "onerror"
	ActionCancelDelay  aacsys.ActionName = "canceldelay"
	ActionNonce        aacsys.ActionName = "nonce"
)

const maxNonceLength = 256

// NewAccountMsg creates an account.
type NewAccountMsg struct {
	Creator  aacsys.AccountName
	Name     aacsys.AccountName
	Owner    Authority
	Active   Authority
	Recovery Authority
}

func (m *NewAccountMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *NewAccountMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *NewAccountMsg) Validate() error {
	if err := m.Creator.Validate(); err != nil {
		return errors.Wrap(err, "creator")
	}
	if err := m.Name.Validate(); err != nil {
		return errors.Wrap(err, "name")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Active.Validate(); err != nil {
		return errors.Wrap(err, "active")
	}
	return errors.Wrap(m.Recovery.Validate(), "recovery")
}

// UpdateAuthMsg creates or replaces a permission of an account.
type UpdateAuthMsg struct {
	Account    aacsys.AccountName
	Permission PermissionName
	Parent     PermissionName
	Data       Authority
	Delay      uint32
}

func (m *UpdateAuthMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *UpdateAuthMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *UpdateAuthMsg) Validate() error {
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := m.Permission.Validate(); err != nil {
		return errors.Wrap(err, "permission")
	}
	if m.Permission != "owner" {
		if err := m.Parent.Validate(); err != nil {
			return errors.Wrap(err, "parent")
		}
	}
	return errors.Wrap(m.Data.Validate(), "data")
}

// DeleteAuthMsg removes a permission of an account.
type DeleteAuthMsg struct {
	Account    aacsys.AccountName
	Permission PermissionName
}

func (m *DeleteAuthMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *DeleteAuthMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *DeleteAuthMsg) Validate() error {
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return errors.Wrap(m.Permission.Validate(), "permission")
}

// LinkAuthMsg requires the permission for actions of given type.
type LinkAuthMsg struct {
	Account     aacsys.AccountName
	Code        aacsys.AccountName
	Type        aacsys.ActionName
	Requirement PermissionName
}

func (m *LinkAuthMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *LinkAuthMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *LinkAuthMsg) Validate() error {
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if err := m.Code.Validate(); err != nil {
		return errors.Wrap(err, "code")
	}
	return errors.Wrap(m.Requirement.Validate(), "requirement")
}

// UnlinkAuthMsg reverts a LinkAuthMsg.
type UnlinkAuthMsg struct {
	Account aacsys.AccountName
	Code    aacsys.AccountName
	Type    aacsys.ActionName
}

func (m *UnlinkAuthMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *UnlinkAuthMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *UnlinkAuthMsg) Validate() error {
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return errors.Wrap(m.Code.Validate(), "code")
}

// PostRecoveryMsg requests to replace the owner authority of an account.
type PostRecoveryMsg struct {
	Account aacsys.AccountName
	Data    Authority
	Memo    string
}

func (m *PostRecoveryMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *PostRecoveryMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *PostRecoveryMsg) Validate() error {
	if err := m.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return errors.Wrap(m.Data.Validate(), "data")
}

// PassRecoveryMsg approves a pending recovery.
type PassRecoveryMsg struct {
	Account aacsys.AccountName
}

func (m *PassRecoveryMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *PassRecoveryMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }
func (m *PassRecoveryMsg) Validate() error            { return errors.Wrap(m.Account.Validate(), "account") }

// VetoRecoveryMsg rejects a pending recovery.
type VetoRecoveryMsg struct {
	Account aacsys.AccountName
}

func (m *VetoRecoveryMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *VetoRecoveryMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }
func (m *VetoRecoveryMsg) Validate() error            { return errors.Wrap(m.Account.Validate(), "account") }

// OnErrorMsg reports a failed deferred transaction to its sender.
type OnErrorMsg struct {
	SenderID []byte
	SentTrx  []byte
}

func (m *OnErrorMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *OnErrorMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *OnErrorMsg) Validate() error {
	if len(m.SentTrx) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sent transaction")
	}
	return nil
}

// CancelDelayMsg cancels a delayed transaction.
type CancelDelayMsg struct {
	Canceling PermissionLevel
	TrxID     aacsys.Checksum256
}

func (m *CancelDelayMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *CancelDelayMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *CancelDelayMsg) Validate() error {
	if err := m.Canceling.Actor.Validate(); err != nil {
		return errors.Wrap(err, "canceling actor")
	}
	return errors.Wrap(m.Canceling.Permission.Validate(), "canceling permission")
}

// NonceMsg carries an arbitrary value used to make otherwise identical
// transactions unique.
type NonceMsg struct {
	Value string
}

func (m *NonceMsg) Marshal() ([]byte, error)   { return codec.Marshal(m) }
func (m *NonceMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

func (m *NonceMsg) Validate() error {
	if len(m.Value) > maxNonceLength {
		return errors.Wrap(errors.ErrInput, "nonce too long")
	}
	return nil
}
