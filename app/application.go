package app

import (
	"context"
	"fmt"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x"
	"github.com/aacio/aacsys/x/rewards"
	"github.com/tendermint/tendermint/libs/log"
)

// Application processes blocks of actions on top of a committed store.
//
// Every block starts with BeginBlock, which accounts the block through the
// onblock action. Actions delivered afterwards run in separate cache wraps
// of the block state: a failing action leaves no writes behind. Commit
// persists the block state.
type Application struct {
	logger log.Logger

	store   aacsys.CommitKVStore
	deliver aacsys.KVCacheWrap

	dispatcher  *Dispatcher
	initializer aacsys.Initializer

	// system is the account receiving the actions. It authorizes the
	// onblock notifications.
	system aacsys.AccountName

	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app
	baseContext aacsys.Context
	// blockContext is reset on BeginBlock and cleared on Commit
	blockContext aacsys.Context

	debug bool
}

// NewApplication loads the latest committed state of the store.
func NewApplication(store aacsys.CommitKVStore, d *Dispatcher, system aacsys.AccountName) (*Application, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	a := &Application{
		store:      store,
		deliver:    store.CacheWrap(),
		dispatcher: d,
		system:     system,
	}
	a = a.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(a.deliver)
	if err != nil {
		return nil, err
	}
	a.chainID = chainID
	return a, nil
}

// WithLogger sets the logger on the Application and returns it,
// to make it easy to chain in initialization
func (a *Application) WithLogger(logger log.Logger) *Application {
	a.logger = logger
	a.baseContext = aacsys.WithLogger(context.Background(), logger)
	return a
}

// WithInit is used to set the init function we call
func (a *Application) WithInit(init aacsys.Initializer) *Application {
	a.initializer = init
	return a
}

// WithDebug exposes the messages of internal errors in the results.
func (a *Application) WithDebug(debug bool) *Application {
	a.debug = debug
	return a
}

// ChainID returns the chain id set by the genesis, if any.
func (a *Application) ChainID() string {
	return a.chainID
}

// Logger returns the application base logger
func (a *Application) Logger() log.Logger {
	return a.logger
}

// DeliverStore returns the current block state.
func (a *Application) DeliverStore() aacsys.CacheableKVStore {
	return a.deliver
}

// InitChain loads the genesis state. It can be called only once in the
// life of a chain.
func (a *Application) InitChain(gen *Genesis) error {
	if a.chainID != "" {
		return errors.Wrapf(ErrGenesis, "state previously loaded for chain %s", a.chainID)
	}
	if gen.ChainID == "" {
		return errors.Wrap(ErrGenesis, "missing chain id")
	}
	if err := saveChainID(a.deliver, gen.ChainID); err != nil {
		return err
	}
	if a.initializer != nil {
		if err := a.initializer.FromGenesis(gen.AppState, a.deliver); err != nil {
			return errors.Wrap(err, "initialize from genesis")
		}
	}
	a.chainID = gen.ChainID
	a.logger.Info("genesis loaded", "chain_id", gen.ChainID)
	return nil
}

// BeginBlock starts processing of a block. The block is accounted by
// dispatching the onblock action of the system contract.
func (a *Application) BeginBlock(header aacsys.BlockHeader) (*aacsys.DeliverResult, error) {
	if err := header.Validate(); err != nil {
		return nil, errors.Wrap(err, "header")
	}
	data, err := (&rewards.OnBlockMsg{Header: header}).Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal onblock")
	}
	a.blockContext = aacsys.WithBlockTime(a.baseContext, header.Timestamp)
	res, err := a.Deliver(&aacsys.ActionEnvelope{
		Code:          a.system,
		Name:          rewards.ActionOnBlock,
		Authorization: []aacsys.AccountName{a.system},
		Data:          data,
	})
	if err != nil {
		// A block that was not accounted cannot take actions.
		a.blockContext = nil
		return nil, err
	}
	return res, nil
}

// Deliver processes an action signed by the accounts listed in its
// authorization.
func (a *Application) Deliver(env *aacsys.ActionEnvelope) (*aacsys.DeliverResult, error) {
	if a.blockContext == nil {
		return nil, errors.Wrap(errors.ErrState, "no block in progress")
	}
	return a.deliverIn(a.blockContext, env)
}

// DeliverInline processes an action scheduled by another action of the
// sender account, either as an inline action or a deferred transaction.
func (a *Application) DeliverInline(sender aacsys.AccountName, env *aacsys.ActionEnvelope) (*aacsys.DeliverResult, error) {
	if a.blockContext == nil {
		return nil, errors.Wrap(errors.ErrState, "no block in progress")
	}
	if err := sender.Validate(); err != nil {
		return nil, errors.Wrap(err, "sender")
	}
	return a.deliverIn(aacsys.WithSender(a.blockContext, sender), env)
}

func (a *Application) deliverIn(ctx aacsys.Context, env *aacsys.ActionEnvelope) (*aacsys.DeliverResult, error) {
	if err := env.Validate(); err != nil {
		return nil, errors.Wrap(err, "envelope")
	}
	ctx = x.WithAuthorization(ctx, env.Authorization)

	cache := a.deliver.CacheWrap()
	res, err := a.dispatch(ctx, cache, env)
	if err != nil {
		cache.Discard()
		a.logger.Debug("action failed", "code", env.Code, "action", env.Name, "err", err)
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write action state")
	}
	if res == nil {
		res = &aacsys.DeliverResult{}
	}
	return res, nil
}

// dispatch calls the dispatcher, converting a panic into an error.
func (a *Application) dispatch(ctx aacsys.Context, db aacsys.KVStore, env *aacsys.ActionEnvelope) (res *aacsys.DeliverResult, err error) {
	defer errors.Recover(&err)
	return a.dispatcher.Dispatch(ctx, db, a.system, env.Code, env.Name, env.Data)
}

// Commit persists the block state and ends the block.
func (a *Application) Commit() (aacsys.CommitID, error) {
	if err := a.deliver.Write(); err != nil {
		return aacsys.CommitID{}, errors.Wrap(err, "write block state")
	}
	id, err := a.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	a.deliver = a.store.CacheWrap()
	a.blockContext = nil
	a.logger.Info("commit synced", "version", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return id, nil
}

// LatestVersion returns the last committed version.
func (a *Application) LatestVersion() (aacsys.CommitID, error) {
	return a.store.LatestVersion()
}

// Result is the host facing outcome of an action.
type Result struct {
	Code uint32
	Log  string
	Tags []string
}

// ResultOf converts the outcome of a delivery. Messages of internal errors
// are exposed only in debug mode.
func (a *Application) ResultOf(res *aacsys.DeliverResult, err error) Result {
	if err != nil {
		code, msg := errors.ResultInfo(err, a.debug)
		return Result{Code: code, Log: msg}
	}
	r := Result{Log: res.Log}
	for _, t := range res.Tags {
		r.Tags = append(r.Tags, string(t.Key)+"="+string(t.Value))
	}
	return r
}
