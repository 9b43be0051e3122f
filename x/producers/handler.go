package producers

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x"
)

// Routes returns the producer registration actions of the contract deployed
// under given code account.
func Routes(code aacsys.AccountName, auth x.Authenticator) []aacsys.Route {
	bucket := NewBucket()
	return []aacsys.Route{
		{
			Code:      code,
			Name:      ActionRegProducer,
			NewAction: func() aacsys.Action { return &RegProducerMsg{} },
			Handler:   &regProducerHandler{auth: auth, bucket: bucket},
		},
		{
			Code:      code,
			Name:      ActionUnregProducer,
			NewAction: func() aacsys.Action { return &UnregProducerMsg{} },
			Handler:   &unregProducerHandler{auth: auth, bucket: bucket},
		},
	}
}

type regProducerHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ aacsys.Handler = (*regProducerHandler)(nil)

// Deliver creates an active record with no votes, or updates the key and
// the url of an existing one and activates it again.
func (h *regProducerHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*RegProducerMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, msg.Producer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", msg.Producer)
	}

	p, err := h.bucket.GetProducer(db, msg.Producer)
	switch {
	case ErrUnknownProducer.Is(err):
		p = &Producer{Owner: msg.Producer}
	case err != nil:
		return nil, err
	}
	p.ProducerKey = msg.ProducerKey
	p.URL = msg.URL
	p.Active = true
	if err := h.bucket.Put(db, p); err != nil {
		return nil, errors.Wrap(err, "save producer")
	}

	aacsys.GetLogger(ctx).Info("producer registered", "producer", msg.Producer)
	return &aacsys.DeliverResult{}, nil
}

type unregProducerHandler struct {
	auth   x.Authenticator
	bucket Bucket
}

var _ aacsys.Handler = (*unregProducerHandler)(nil)

// Deliver deactivates the producer. The record is kept, together with its
// accrued rewards and votes.
func (h *unregProducerHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*UnregProducerMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, msg.Producer) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", msg.Producer)
	}

	p, err := h.bucket.GetProducer(db, msg.Producer)
	if err != nil {
		return nil, err
	}
	p.Active = false
	if err := h.bucket.Put(db, p); err != nil {
		return nil, errors.Wrap(err, "save producer")
	}

	aacsys.GetLogger(ctx).Info("producer unregistered", "producer", msg.Producer)
	return &aacsys.DeliverResult{}, nil
}
