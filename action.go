package aacsys

import (
	"regexp"

	"github.com/aacio/aacsys/errors"
)

var isAccountName = regexp.MustCompile(`^[a-z1-5.]{1,12}$`).MatchString

// AccountName identifies an account on the chain. Names are at most 12
// characters long and use the alphabet [a-z1-5.].
type AccountName string

// Validate returns an error if this is not a well formed account name.
func (n AccountName) Validate() error {
	if !isAccountName(string(n)) {
		return errors.Wrapf(errors.ErrInput, "invalid account name %q", string(n))
	}
	return nil
}

func (n AccountName) String() string {
	return string(n)
}

// ActionName is the name of an action declared by a contract.
type ActionName string

// Action is the decoded payload of an action. It is the request only, and
// must be validated by the Handlers. All authentication information travels
// in the Context.
type Action interface {
	Persistent
	Validater
}

// ActionEnvelope identifies which handler should run and carries the
// serialized arguments it receives, together with the accounts that
// authorized it.
type ActionEnvelope struct {
	Code          AccountName
	Name          ActionName
	Authorization []AccountName
	Data          []byte
}

// Validate checks the envelope is well formed. The payload is validated
// once decoded by the dispatcher.
func (e *ActionEnvelope) Validate() error {
	if err := e.Code.Validate(); err != nil {
		return errors.Wrap(err, "code")
	}
	if e.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "action name")
	}
	for i, a := range e.Authorization {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "authorization %d", i)
		}
	}
	return nil
}
