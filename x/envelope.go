package x

import (
	"context"

	"github.com/aacio/aacsys"
)

type contextKey int

const contextKeyAuthorization contextKey = iota

// WithAuthorization returns a context that carries the accounts that
// authorized the processed action envelope.
func WithAuthorization(ctx aacsys.Context, accounts []aacsys.AccountName) aacsys.Context {
	return context.WithValue(ctx, contextKeyAuthorization, accounts)
}

// EnvelopeAuth authenticates the accounts listed in the authorization of the
// action envelope currently being delivered.
type EnvelopeAuth struct{}

var _ Authenticator = EnvelopeAuth{}

// GetAccounts returns the authorization of the current envelope.
func (EnvelopeAuth) GetAccounts(ctx aacsys.Context) []aacsys.AccountName {
	val, _ := ctx.Value(contextKeyAuthorization).([]aacsys.AccountName)
	return val
}

// HasAccount returns true if given account authorized the current envelope.
func (a EnvelopeAuth) HasAccount(ctx aacsys.Context, name aacsys.AccountName) bool {
	for _, acc := range a.GetAccounts(ctx) {
		if acc == name {
			return true
		}
	}
	return false
}
