package app

import (
	"encoding/json"
	"testing"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/store/iavl"
	"github.com/aacio/aacsys/weavetest"
	"github.com/aacio/aacsys/weavetest/assert"
	"github.com/aacio/aacsys/x"
	"github.com/aacio/aacsys/x/currency"
	"github.com/aacio/aacsys/x/params"
	"github.com/aacio/aacsys/x/producers"
	"github.com/aacio/aacsys/x/rewards"
	"github.com/stretchr/testify/require"
)

const testAppState = `{
	"conf": {
		"params": {"blocks_per_cycle": 10, "payment_per_block": 100, "payment_to_bucket_rate": 2}
	},
	"producers": [
		{"owner": "prod1", "total_votes": 30, "active": true, "producer_key": "AQ=="},
		{"owner": "prod2", "total_votes": 10, "active": true, "producer_key": "Ag=="}
	],
	"currency": [{"owner": "aacio", "amount": 1000000}]
}`

func newTestApp(t *testing.T, handlers SystemHandlers) *Application {
	t.Helper()

	conf := DefaultSystemConfig()
	conf.Handlers = handlers
	a, err := NewApplication(iavl.NewMemCommitStore(), SystemDispatcher(conf, x.EnvelopeAuth{}), conf.SystemAccount)
	require.NoError(t, err)
	a.WithInit(SystemInitializer())

	var state aacsys.Options
	require.NoError(t, json.Unmarshal([]byte(testAppState), &state))
	require.NoError(t, a.InitChain(&Genesis{ChainID: "test-chain", AppState: state}))
	_, err = a.Commit()
	require.NoError(t, err)
	return a
}

func envelope(t *testing.T, name aacsys.ActionName, msg aacsys.Action, signers ...aacsys.AccountName) *aacsys.ActionEnvelope {
	t.Helper()
	data, err := msg.Marshal()
	require.NoError(t, err)
	return &aacsys.ActionEnvelope{Code: "aacio", Name: name, Authorization: signers, Data: data}
}

func balance(t *testing.T, a *Application, owner aacsys.AccountName) int64 {
	t.Helper()
	amount, err := currency.NewController().Balance(a.DeliverStore(), owner)
	require.NoError(t, err)
	return amount
}

func TestApplicationRewardsFlow(t *testing.T) {
	a := newTestApp(t, SystemHandlers{})

	_, err := a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1000})
	require.NoError(t, err)
	_, err = a.Commit()
	require.NoError(t, err)

	sched, err := producers.CurrentSchedule(a.DeliverStore())
	require.NoError(t, err)
	require.Equal(t, uint32(1), sched.Version)
	require.Len(t, sched.Producers, 2)

	_, err = a.BeginBlock(aacsys.BlockHeader{Producer: "prod2", Timestamp: 1005})
	require.NoError(t, err)

	p, err := params.LoadOrDefault(a.DeliverStore())
	require.NoError(t, err)
	require.Equal(t, int64(10), p.SharedBucket)
	require.Equal(t, aacsys.UnixTime(1000), p.FirstBlockTimeInCycle)

	// 100 for the produced block and 30/40 of the pool.
	res, err := a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod1"}, "prod1"))
	require.NoError(t, err)
	require.Equal(t, Result{
		Log:  "producer claiming rewards",
		Tags: []string{"claim.owner=prod1", "claim.amount=107"},
	}, a.ResultOf(res, err))
	require.Equal(t, int64(107), balance(t, a, "prod1"))
	require.Equal(t, int64(1000000-107), balance(t, a, "aacio"))

	_, err = a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod1"}, "prod1"))
	assert.IsErr(t, rewards.ErrClaimTooSoon, err)
	require.Equal(t, int64(107), balance(t, a, "prod1"))

	_, err = a.DeliverInline("prod1", envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod2"}, "prod2"))
	assert.IsErr(t, rewards.ErrInvalidContext, err)

	_, err = a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod2"}, "prod1"))
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod2"}, "prod2"))
	require.NoError(t, err)
	// 100 for the produced block and 10/40 of the 3 left in the pool.
	require.Equal(t, int64(100), balance(t, a, "prod2"))

	// A new cycle starts on the grid, even if blocks were missed.
	_, err = a.BeginBlock(aacsys.BlockHeader{Producer: "prod2", Timestamp: 1027})
	require.NoError(t, err)
	p, err = params.LoadOrDefault(a.DeliverStore())
	require.NoError(t, err)
	require.Equal(t, aacsys.UnixTime(1020), p.FirstBlockTimeInCycle)
	require.Equal(t, aacsys.UnixTime(1027), p.LastBucketFillTime)

	id, err := a.Commit()
	require.NoError(t, err)
	require.Equal(t, int64(3), id.Version)
}

func TestApplicationOnBlockRequiresSystemAccount(t *testing.T) {
	a := newTestApp(t, SystemHandlers{})

	_, err := a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1000})
	require.NoError(t, err)

	forged := &rewards.OnBlockMsg{Header: aacsys.BlockHeader{Producer: "prod2", Timestamp: 1000000}}
	_, err = a.Deliver(envelope(t, rewards.ActionOnBlock, forged, "prod2"))
	assert.IsErr(t, errors.ErrUnauthorized, err)

	p, err := params.LoadOrDefault(a.DeliverStore())
	require.NoError(t, err)
	require.Equal(t, aacsys.UnixTime(1000), p.LastBucketFillTime)
	require.Equal(t, int64(0), p.SharedBucket)

	_, err = a.Commit()
	require.NoError(t, err)
	_, err = a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1001})
	require.NoError(t, err)
}

func TestApplicationFailedBeginBlockClosesBlock(t *testing.T) {
	a := newTestApp(t, SystemHandlers{})

	_, err := a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1000})
	require.NoError(t, err)
	_, err = a.Commit()
	require.NoError(t, err)

	// Block time going backwards cannot be accounted.
	_, err = a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 999})
	assert.IsErr(t, errors.ErrState, err)

	_, err = a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod1"}, "prod1"))
	assert.IsErr(t, errors.ErrState, err)
	require.Equal(t, int64(0), balance(t, a, "prod1"))
}

func TestApplicationExternalActions(t *testing.T) {
	vote := &weavetest.Handler{}
	a := newTestApp(t, SystemHandlers{VoteProducer: vote})
	_, err := a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1000})
	require.NoError(t, err)

	_, err = a.Deliver(envelope(t, ActionVoteProducer, &VoteProducerMsg{Voter: "alice", Producers: []aacsys.AccountName{"prod1", "prod2"}}, "alice"))
	require.NoError(t, err)
	require.Equal(t, 1, vote.CallCount())

	_, err = a.Deliver(envelope(t, ActionRegProxy, &RegProxyMsg{Proxy: "alice"}, "alice"))
	assert.IsErr(t, errors.ErrNotImplemented, err)

	_, err = a.Deliver(envelope(t, ActionUndelegateBW, &UndelegateBWMsg{From: "alice", Receiver: "alice", UnstakeNet: 1}, "alice"))
	assert.IsErr(t, errors.ErrNotImplemented, err)

	_, err = a.Deliver(envelope(t, ActionVoteProducer, &VoteProducerMsg{Voter: "alice", Producers: []aacsys.AccountName{"prod2", "prod1"}}, "alice"))
	assert.IsErr(t, errors.ErrInput, err)
	require.Equal(t, 1, vote.CallCount())

	res, err := a.Deliver(&aacsys.ActionEnvelope{Code: "aacio", Name: "unknown"})
	require.NoError(t, err)
	require.Equal(t, Result{}, a.ResultOf(res, err))
}

func TestApplicationFailedActionLeavesNoWrites(t *testing.T) {
	key := []byte("partial")
	failing := &weavetest.Handler{
		OnDeliver: func(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) {
			if err := db.Set(key, []byte("x")); err != nil {
				panic(err)
			}
		},
		DeliverErr: errors.ErrState,
	}
	panicking := aacsys.HandlerFunc(func(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
		if err := db.Set(key, []byte("y")); err != nil {
			return nil, err
		}
		panic("boom")
	})
	a := newTestApp(t, SystemHandlers{VoteProducer: failing, Refund: panicking})
	_, err := a.BeginBlock(aacsys.BlockHeader{Producer: "prod1", Timestamp: 1000})
	require.NoError(t, err)

	_, err = a.Deliver(envelope(t, ActionVoteProducer, &VoteProducerMsg{Voter: "alice"}, "alice"))
	assert.IsErr(t, errors.ErrState, err)
	has, err := a.DeliverStore().Has(key)
	require.NoError(t, err)
	require.False(t, has)

	_, err = a.Deliver(envelope(t, ActionRefund, &RefundMsg{Owner: "alice"}, "alice"))
	assert.IsErr(t, errors.ErrPanic, err)
	has, err = a.DeliverStore().Has(key)
	require.NoError(t, err)
	require.False(t, has)

	code, _ := errors.ResultInfo(err, false)
	require.Equal(t, a.ResultOf(nil, err).Code, code)
}

func TestApplicationLifecycle(t *testing.T) {
	a := newTestApp(t, SystemHandlers{})
	require.Equal(t, "test-chain", a.ChainID())

	err := a.InitChain(&Genesis{ChainID: "other-chain"})
	assert.IsErr(t, ErrGenesis, err)

	_, err = a.Deliver(envelope(t, rewards.ActionClaimRewards, &rewards.ClaimRewardsMsg{Owner: "prod1"}, "prod1"))
	assert.IsErr(t, errors.ErrState, err)

	_, err = a.BeginBlock(aacsys.BlockHeader{Producer: "Bad", Timestamp: 1000})
	assert.IsErr(t, errors.ErrInput, err)

	_, err = a.Deliver(&aacsys.ActionEnvelope{Name: "claimrewards"})
	assert.IsErr(t, errors.ErrState, err)
}
