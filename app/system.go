package app

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/x"
	"github.com/aacio/aacsys/x/currency"
	"github.com/aacio/aacsys/x/cycle"
	"github.com/aacio/aacsys/x/native"
	"github.com/aacio/aacsys/x/params"
	"github.com/aacio/aacsys/x/producers"
	"github.com/aacio/aacsys/x/rewards"
)

// DefaultSystemAccount is the account the system contract is deployed
// under.
const DefaultSystemAccount aacsys.AccountName = "aacio"

// SystemConfig describes how the system contract is assembled.
type SystemConfig struct {
	// SystemAccount is the code account of the system contract. It also
	// holds the tokens paid out as rewards.
	SystemAccount aacsys.AccountName
	// TokenAccount is the code account of the token ledger. It is the only
	// account allowed to issue tokens.
	TokenAccount aacsys.AccountName
	Handlers     SystemHandlers
}

// DefaultSystemConfig returns the configuration with both contracts
// deployed under the system account.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		SystemAccount: DefaultSystemAccount,
		TokenAccount:  DefaultSystemAccount,
	}
}

// SystemDispatcher returns the dispatcher of the system contract: the token
// actions first, then the system actions and finally the undelegatebw
// fallback.
func SystemDispatcher(conf SystemConfig, auth x.Authenticator) *Dispatcher {
	code := conf.SystemAccount
	ledger := currency.NewController()
	scheduler := cycle.NewScheduler(producers.NewElector())

	route := func(name aacsys.ActionName, fn func() aacsys.Action, h aacsys.Handler) aacsys.Route {
		return aacsys.Route{Code: code, Name: name, NewAction: fn, Handler: orNotImplemented(h)}
	}

	var system []aacsys.Route
	system = append(system,
		route(ActionDelegateBW, func() aacsys.Action { return &DelegateBWMsg{} }, conf.Handlers.DelegateBW),
		route(ActionRefund, func() aacsys.Action { return &RefundMsg{} }, conf.Handlers.Refund),
		route(ActionRegProxy, func() aacsys.Action { return &RegProxyMsg{} }, conf.Handlers.RegProxy),
		route(ActionUnregProxy, func() aacsys.Action { return &UnregProxyMsg{} }, conf.Handlers.UnregProxy),
	)
	system = append(system, producers.Routes(code, auth)...)
	system = append(system,
		route(ActionVoteProducer, func() aacsys.Action { return &VoteProducerMsg{} }, conf.Handlers.VoteProducer),
	)
	system = append(system, rewards.Routes(code, auth, scheduler, ledger)...)
	system = append(system, native.Routes(code)...)
	system = append(system, native.NonceRoute(code))

	return NewDispatcher().
		AddGroup(currency.Routes(conf.TokenAccount, auth, ledger)...).
		AddGroup(system...).
		SetFallback(route(ActionUndelegateBW, func() aacsys.Action { return &UndelegateBWMsg{} }, conf.Handlers.UndelegateBW))
}

// SystemInitializer loads the genesis state of every system component.
func SystemInitializer() aacsys.Initializer {
	return ChainInitializers(
		&params.Initializer{},
		&producers.Initializer{},
		currency.Initializer{},
	)
}
