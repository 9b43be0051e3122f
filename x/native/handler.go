package native

import (
	"github.com/aacio/aacsys"
)

// Routes returns the native actions of the system contract deployed under
// given code account, in dispatch order.
func Routes(code aacsys.AccountName) []aacsys.Route {
	route := func(name aacsys.ActionName, fn func() aacsys.Action) aacsys.Route {
		return aacsys.Route{Code: code, Name: name, NewAction: fn, Handler: noopHandler{name: name}}
	}
	return []aacsys.Route{
		route(ActionNewAccount, func() aacsys.Action { return &NewAccountMsg{} }),
		route(ActionUpdateAuth, func() aacsys.Action { return &UpdateAuthMsg{} }),
		route(ActionDeleteAuth, func() aacsys.Action { return &DeleteAuthMsg{} }),
		route(ActionLinkAuth, func() aacsys.Action { return &LinkAuthMsg{} }),
		route(ActionUnlinkAuth, func() aacsys.Action { return &UnlinkAuthMsg{} }),
		route(ActionPostRecovery, func() aacsys.Action { return &PostRecoveryMsg{} }),
		route(ActionPassRecovery, func() aacsys.Action { return &PassRecoveryMsg{} }),
		route(ActionVetoRecovery, func() aacsys.Action { return &VetoRecoveryMsg{} }),
		route(ActionOnError, func() aacsys.Action { return &OnErrorMsg{} }),
		route(ActionCancelDelay, func() aacsys.Action { return &CancelDelayMsg{} }),
	}
}

// NonceRoute returns the nonce action of the system contract.
func NonceRoute(code aacsys.AccountName) aacsys.Route {
	return aacsys.Route{
		Code:      code,
		Name:      ActionNonce,
		NewAction: func() aacsys.Action { return &NonceMsg{} },
		Handler:   noopHandler{name: ActionNonce},
	}
}

// noopHandler accepts the action. The chain applies its effects.
type noopHandler struct {
	name aacsys.ActionName
}

func (h noopHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	aacsys.GetLogger(ctx).Debug("native action", "action", h.name)
	return &aacsys.DeliverResult{}, nil
}
