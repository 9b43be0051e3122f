package weavetest

import "github.com/aacio/aacsys"

// Handler is a mock implementing aacsys.Handler interface. It counts the
// calls and returns the configured result.
type Handler struct {
	deliverCall   int
	DeliverResult aacsys.DeliverResult
	DeliverErr    error

	// OnDeliver if set is called with each delivered action, before the
	// result is returned.
	OnDeliver func(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action)
}

var _ aacsys.Handler = (*Handler)(nil)

func (h *Handler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	h.deliverCall++
	if h.OnDeliver != nil {
		h.OnDeliver(ctx, db, act)
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CallCount() int {
	return h.deliverCall
}
