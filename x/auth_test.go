package x_test

import (
	"context"
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/weavetest"
	"github.com/aacio/aacsys/x"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := aacsys.AccountName("alice")
	b := aacsys.AccountName("bob")
	c := aacsys.AccountName("carol")

	ctx := context.Background()
	ctx = x.WithAuthorization(ctx, []aacsys.AccountName{a})
	ctxAuth := &weavetest.CtxAuth{Key: "auth"}
	ctx = ctxAuth.SetAccounts(ctx, b)

	cases := map[string]struct {
		auth     x.Authenticator
		mainSig  aacsys.AccountName
		hasMain  bool
		accounts []aacsys.AccountName
	}{
		"no authorization": {
			auth: &weavetest.Auth{},
		},
		"static authorization": {
			auth:     &weavetest.Auth{Signer: c},
			mainSig:  c,
			hasMain:  true,
			accounts: []aacsys.AccountName{c},
		},
		"envelope authorization": {
			auth:     x.EnvelopeAuth{},
			mainSig:  a,
			hasMain:  true,
			accounts: []aacsys.AccountName{a},
		},
		"chained authorization keeps the order": {
			auth:     x.ChainAuth(x.EnvelopeAuth{}, ctxAuth, &weavetest.Auth{Signer: c}),
			mainSig:  a,
			hasMain:  true,
			accounts: []aacsys.AccountName{a, b, c},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			sig, ok := x.MainSigner(ctx, tc.auth)
			assert.Equal(t, tc.hasMain, ok)
			assert.Equal(t, tc.mainSig, sig)
			assert.Equal(t, tc.accounts, tc.auth.GetAccounts(ctx))
			for _, acc := range tc.accounts {
				assert.True(t, tc.auth.HasAccount(ctx, acc))
			}
			assert.True(t, x.HasAllAccounts(ctx, tc.auth, tc.accounts))
			assert.False(t, tc.auth.HasAccount(ctx, "mallory"))
		})
	}
}
