package x

import (
	"github.com/aacio/aacsys"
)

// Authenticator tells which accounts authorized the action being handled.
// Handlers receive it in their constructor, so the authorization source can
// be swapped without touching the handlers.
type Authenticator interface {
	// GetAccounts returns all accounts that authorized the action.
	GetAccounts(aacsys.Context) []aacsys.AccountName
	// HasAccount reports whether name authorized the action.
	HasAccount(aacsys.Context, aacsys.AccountName) bool
}

// MultiAuth accepts an account if any of its authenticators does.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth combines authenticators into one.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls: impls}
}

// GetAccounts concatenates the accounts of all authenticators in order.
func (m MultiAuth) GetAccounts(ctx aacsys.Context) []aacsys.AccountName {
	var all []aacsys.AccountName
	for _, a := range m.impls {
		all = append(all, a.GetAccounts(ctx)...)
	}
	return all
}

func (m MultiAuth) HasAccount(ctx aacsys.Context, name aacsys.AccountName) bool {
	for _, a := range m.impls {
		if a.HasAccount(ctx, name) {
			return true
		}
	}
	return false
}

// MainSigner returns the first authorizing account.
func MainSigner(ctx aacsys.Context, auth Authenticator) (aacsys.AccountName, bool) {
	if accounts := auth.GetAccounts(ctx); len(accounts) != 0 {
		return accounts[0], true
	}
	return "", false
}

// HasAllAccounts reports whether every account in required authorized the
// action.
func HasAllAccounts(ctx aacsys.Context, auth Authenticator, required []aacsys.AccountName) bool {
	for _, name := range required {
		if !auth.HasAccount(ctx, name) {
			return false
		}
	}
	return true
}
