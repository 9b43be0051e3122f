package app

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
)

type routeKey struct {
	code aacsys.AccountName
	name aacsys.ActionName
}

// Dispatcher routes actions to their handlers. Routes are grouped and the
// groups are consulted in registration order. A single fallback route is
// consulted when no group matches.
type Dispatcher struct {
	groups   [][]aacsys.Route
	fallback *aacsys.Route
	seen     map[routeKey]struct{}
}

// NewDispatcher returns a dispatcher without any route.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{seen: make(map[routeKey]struct{})}
}

// AddGroup appends a group of routes. It panics if any of the routes was
// already registered.
func (d *Dispatcher) AddGroup(routes ...aacsys.Route) *Dispatcher {
	for _, r := range routes {
		d.register(r)
	}
	d.groups = append(d.groups, routes)
	return d
}

// SetFallback registers the route consulted when no group matches. It
// panics if a fallback is already set or the route is registered in a
// group.
func (d *Dispatcher) SetFallback(r aacsys.Route) *Dispatcher {
	if d.fallback != nil {
		panic(errors.Wrap(ErrAmbiguousDispatch, "fallback already set"))
	}
	d.register(r)
	d.fallback = &r
	return d
}

func (d *Dispatcher) register(r aacsys.Route) {
	if err := r.Code.Validate(); err != nil {
		panic(errors.Wrapf(err, "route %s", r.Name))
	}
	if r.Name == "" || r.NewAction == nil || r.Handler == nil {
		panic(errors.Wrapf(errors.ErrHuman, "incomplete route %s::%s", r.Code, r.Name))
	}
	key := routeKey{code: r.Code, name: r.Name}
	if _, ok := d.seen[key]; ok {
		panic(errors.Wrapf(ErrAmbiguousDispatch, "%s::%s", r.Code, r.Name))
	}
	d.seen[key] = struct{}{}
}

// Lookup returns the route serving given action.
func (d *Dispatcher) Lookup(code aacsys.AccountName, name aacsys.ActionName) (aacsys.Route, bool) {
	for _, group := range d.groups {
		for _, r := range group {
			if r.Code == code && r.Name == name {
				return r, true
			}
		}
	}
	if d.fallback != nil && d.fallback.Code == code && d.fallback.Name == name {
		return *d.fallback, true
	}
	return aacsys.Route{}, false
}

// Dispatch decodes the payload into the schema of the matching route,
// validates it and calls the route handler. An action nobody handles is
// ignored: a nil result and a nil error are returned.
func (d *Dispatcher) Dispatch(
	ctx aacsys.Context,
	db aacsys.KVStore,
	receiver, code aacsys.AccountName,
	name aacsys.ActionName,
	payload []byte,
) (*aacsys.DeliverResult, error) {
	ctx = aacsys.WithLogInfo(ctx, "receiver", receiver, "code", code, "action", name)

	r, ok := d.Lookup(code, name)
	if !ok {
		aacsys.GetLogger(ctx).Debug("no handler")
		return nil, nil
	}

	act := r.NewAction()
	if err := act.Unmarshal(payload); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	if err := act.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", name)
	}
	return r.Handler.Deliver(ctx, db, act)
}
