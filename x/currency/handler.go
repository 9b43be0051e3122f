package currency

import (
	"strconv"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x"
)

// Routes returns the token actions of the ledger deployed under given code
// account. Only that account can issue tokens.
func Routes(code aacsys.AccountName, auth x.Authenticator, ctrl *Controller) []aacsys.Route {
	return []aacsys.Route{
		{
			Code:      code,
			Name:      ActionTransfer,
			NewAction: func() aacsys.Action { return &TransferMsg{} },
			Handler:   &transferHandler{auth: auth, ctrl: ctrl},
		},
		{
			Code:      code,
			Name:      ActionIssue,
			NewAction: func() aacsys.Action { return &IssueMsg{} },
			Handler:   &issueHandler{auth: auth, ctrl: ctrl, issuer: code},
		},
	}
}

type transferHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ aacsys.Handler = (*transferHandler)(nil)

// Deliver moves the tokens if the sender authorized it.
func (h *transferHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*TransferMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, msg.From) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", msg.From)
	}
	if err := h.ctrl.Transfer(ctx, db, msg.From, msg.To, msg.Quantity, msg.Memo); err != nil {
		return nil, err
	}
	res := &aacsys.DeliverResult{}
	res.Tag("transfer.from", string(msg.From))
	res.Tag("transfer.to", string(msg.To))
	res.Tag("transfer.quantity", strconv.FormatInt(msg.Quantity, 10))
	return res, nil
}

type issueHandler struct {
	auth   x.Authenticator
	ctrl   *Controller
	issuer aacsys.AccountName
}

var _ aacsys.Handler = (*issueHandler)(nil)

// Deliver creates the tokens if the issuer authorized it.
func (h *issueHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*IssueMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, h.issuer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", h.issuer)
	}
	if err := h.ctrl.Issue(ctx, db, msg.To, msg.Quantity, msg.Memo); err != nil {
		return nil, err
	}
	res := &aacsys.DeliverResult{}
	res.Tag("issue.to", string(msg.To))
	res.Tag("issue.quantity", strconv.FormatInt(msg.Quantity, 10))
	return res, nil
}
