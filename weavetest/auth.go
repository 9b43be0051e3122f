package weavetest

import (
	"context"
	"fmt"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/x"
)

// Auth is an x.Authenticator that always reports a fixed set of accounts:
// Signers followed by Signer when it is set.
type Auth struct {
	Signer  aacsys.AccountName
	Signers []aacsys.AccountName
}

var _ x.Authenticator = (*Auth)(nil)

func (a *Auth) GetAccounts(aacsys.Context) []aacsys.AccountName {
	if a.Signer == "" {
		return a.Signers
	}
	accounts := make([]aacsys.AccountName, 0, len(a.Signers)+1)
	return append(append(accounts, a.Signers...), a.Signer)
}

func (a *Auth) HasAccount(ctx aacsys.Context, name aacsys.AccountName) bool {
	return contains(a.GetAccounts(ctx), name)
}

// CtxAuth is an x.Authenticator that reads the accounts from the context
// under Key.
type CtxAuth struct {
	Key string
}

var _ x.Authenticator = (*CtxAuth)(nil)

// SetAccounts returns a context authorized by given accounts.
func (a *CtxAuth) SetAccounts(ctx aacsys.Context, accounts ...aacsys.AccountName) aacsys.Context {
	return context.WithValue(ctx, a.Key, accounts)
}

func (a *CtxAuth) GetAccounts(ctx aacsys.Context) []aacsys.AccountName {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []aacsys.AccountName:
		return v
	default:
		panic(fmt.Sprintf("want []aacsys.AccountName under %q, got %T", a.Key, v))
	}
}

func (a *CtxAuth) HasAccount(ctx aacsys.Context, name aacsys.AccountName) bool {
	return contains(a.GetAccounts(ctx), name)
}

func contains(accounts []aacsys.AccountName, name aacsys.AccountName) bool {
	for _, acc := range accounts {
		if acc == name {
			return true
		}
	}
	return false
}
