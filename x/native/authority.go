package native

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

// PermissionName names a permission of an account, for example "active".
type PermissionName string

// Validate returns an error if the name is malformed. Permission names share
// the account name alphabet.
func (p PermissionName) Validate() error {
	return aacsys.AccountName(p).Validate()
}

// PermissionLevel is a permission of a specific account.
type PermissionLevel struct {
	Actor      aacsys.AccountName `json:"actor"`
	Permission PermissionName     `json:"permission"`
}

// KeyWeight is a public key with its weight in the authority.
type KeyWeight struct {
	Key    []byte `json:"key"`
	Weight uint32 `json:"weight"`
}

// PermissionLevelWeight is a delegated permission with its weight in the
// authority.
type PermissionLevelWeight struct {
	Permission PermissionLevel `json:"permission"`
	Weight     uint32          `json:"weight"`
}

// Authority is satisfied when the weights of the provided keys and
// permissions reach the threshold.
type Authority struct {
	Threshold uint32                  `json:"threshold"`
	Keys      []KeyWeight             `json:"keys"`
	Accounts  []PermissionLevelWeight `json:"accounts"`
}

// Validate returns an error if the authority can never be satisfied.
func (a *Authority) Validate() error {
	if a.Threshold == 0 {
		return errors.Wrap(errors.ErrInput, "zero threshold")
	}
	var total uint64
	for i, k := range a.Keys {
		if len(k.Key) == 0 {
			return errors.Wrapf(errors.ErrEmpty, "key %d", i)
		}
		total += uint64(k.Weight)
	}
	for i, acc := range a.Accounts {
		if err := acc.Permission.Actor.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := acc.Permission.Permission.Validate(); err != nil {
			return errors.Wrapf(err, "account %d permission", i)
		}
		total += uint64(acc.Weight)
	}
	if total < uint64(a.Threshold) {
		return errors.Wrapf(errors.ErrInput, "weights %d below threshold %d", total, a.Threshold)
	}
	return nil
}
