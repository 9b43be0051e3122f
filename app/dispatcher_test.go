package app

import (
	"context"
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/store"
	"github.com/aacio/aacsys/weavetest"
	"github.com/aacio/aacsys/weavetest/assert"
)

func mockRoute(code aacsys.AccountName, name aacsys.ActionName, h *weavetest.Handler) aacsys.Route {
	return aacsys.Route{
		Code:      code,
		Name:      name,
		NewAction: func() aacsys.Action { return &weavetest.Action{} },
		Handler:   h,
	}
}

func TestDispatcherRegistration(t *testing.T) {
	var h weavetest.Handler

	d := NewDispatcher().
		AddGroup(mockRoute("token", "transfer", &h)).
		AddGroup(mockRoute("aacio", "transfer", &h), mockRoute("aacio", "onblock", &h))

	assert.Panics(t, func() { d.AddGroup(mockRoute("aacio", "onblock", &h)) })
	assert.Panics(t, func() { d.AddGroup(mockRoute("token", "issue", &h), mockRoute("token", "issue", &h)) })
	assert.Panics(t, func() { d.SetFallback(mockRoute("token", "transfer", &h)) })
	assert.Panics(t, func() { d.AddGroup(mockRoute("Bad", "x", &h)) })
	assert.Panics(t, func() { d.AddGroup(aacsys.Route{Code: "aacio", Name: "nohandler"}) })

	d.SetFallback(mockRoute("aacio", "undelegatebw", &h))
	assert.Panics(t, func() { d.SetFallback(mockRoute("aacio", "other", &h)) })
	assert.Panics(t, func() { d.AddGroup(mockRoute("aacio", "undelegatebw", &h)) })
}

func TestDispatcherAmbiguityError(t *testing.T) {
	var h weavetest.Handler
	d := NewDispatcher().AddGroup(mockRoute("aacio", "onblock", &h))

	assert.PanicsWith(t, ErrAmbiguousDispatch, func() { d.AddGroup(mockRoute("aacio", "onblock", &h)) })
	assert.PanicsWith(t, errors.ErrHuman, func() { d.AddGroup(aacsys.Route{Code: "aacio", Name: "nohandler"}) })
}

func TestDispatch(t *testing.T) {
	var (
		currency weavetest.Handler
		system   weavetest.Handler
		fallback weavetest.Handler
	)
	d := NewDispatcher().
		AddGroup(mockRoute("aacio", "transfer", &currency)).
		AddGroup(mockRoute("aacio", "claimrewards", &system), mockRoute("aacio", "onblock", &system)).
		SetFallback(mockRoute("aacio", "undelegatebw", &fallback))

	cases := map[string]struct {
		code         aacsys.AccountName
		name         aacsys.ActionName
		wantCurrency int
		wantSystem   int
		wantFallback int
		wantNoop     bool
	}{
		"first group": {
			code:         "aacio",
			name:         "transfer",
			wantCurrency: 1,
		},
		"second group": {
			code:       "aacio",
			name:       "onblock",
			wantSystem: 1,
		},
		"fallback": {
			code:         "aacio",
			name:         "undelegatebw",
			wantFallback: 1,
		},
		"unknown action": {
			code:     "aacio",
			name:     "unknown",
			wantNoop: true,
		},
		"other contract": {
			code:     "token",
			name:     "transfer",
			wantNoop: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			currency, system, fallback = weavetest.Handler{}, weavetest.Handler{}, weavetest.Handler{}

			res, err := d.Dispatch(context.Background(), store.MemStore(), "aacio", tc.code, tc.name, []byte("payload"))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantNoop, res == nil)
			assert.Equal(t, tc.wantCurrency, currency.CallCount())
			assert.Equal(t, tc.wantSystem, system.CallCount())
			assert.Equal(t, tc.wantFallback, fallback.CallCount())
		})
	}
}

func TestDispatchDecodesAndValidates(t *testing.T) {
	var got []byte
	h := &weavetest.Handler{
		OnDeliver: func(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) {
			got = act.(*weavetest.Action).Payload
		},
	}
	d := NewDispatcher().
		AddGroup(mockRoute("aacio", "good", h)).
		AddGroup(aacsys.Route{
			Code:      "aacio",
			Name:      "invalid",
			NewAction: func() aacsys.Action { return &weavetest.Action{Err: errors.ErrInput} },
			Handler:   h,
		})

	_, err := d.Dispatch(context.Background(), store.MemStore(), "aacio", "aacio", "good", []byte("data"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("data"), got)

	_, err = d.Dispatch(context.Background(), store.MemStore(), "aacio", "aacio", "invalid", []byte("data"))
	assert.IsErr(t, errors.ErrInput, err)
	assert.Equal(t, 1, h.CallCount())
}

func TestDispatchHandlerError(t *testing.T) {
	h := &weavetest.Handler{DeliverErr: errors.ErrUnauthorized}
	d := NewDispatcher().AddGroup(mockRoute("aacio", "claimrewards", h))

	_, err := d.Dispatch(context.Background(), store.MemStore(), "aacio", "aacio", "claimrewards", nil)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
