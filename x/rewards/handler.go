package rewards

import (
	"math"
	"strconv"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x"
	"github.com/aacio/aacsys/x/params"
	"github.com/aacio/aacsys/x/producers"
	"github.com/holiman/uint256"
)

const (
	// ClaimCooldown is the minimal number of seconds between two claims of
	// the same producer.
	ClaimCooldown = 86400
	// PayedProducers is the number of the most voted active producers that
	// share the pool.
	PayedProducers = 121

	claimMemo = "producer claiming rewards"
)

// Ledger moves tokens between accounts.
type Ledger interface {
	Transfer(ctx aacsys.Context, db aacsys.KVStore, from, to aacsys.AccountName, quantity int64, memo string) error
}

// CycleUpdater starts a new scheduling cycle when due.
type CycleUpdater interface {
	UpdateCycle(ctx aacsys.Context, db aacsys.KVStore, blockTime aacsys.UnixTime) (bool, error)
}

// Routes returns the reward actions of the system contract deployed under
// given code account. Claimed rewards are paid from that account.
func Routes(code aacsys.AccountName, auth x.Authenticator, cycles CycleUpdater, ledger Ledger) []aacsys.Route {
	bucket := producers.NewBucket()
	return []aacsys.Route{
		{
			Code:      code,
			Name:      ActionOnBlock,
			NewAction: func() aacsys.Action { return &OnBlockMsg{} },
			Handler: &onBlockHandler{
				auth:   auth,
				cycles: cycles,
				bucket: bucket,
				system: code,
			},
		},
		{
			Code:      code,
			Name:      ActionClaimRewards,
			NewAction: func() aacsys.Action { return &ClaimRewardsMsg{} },
			Handler: &claimRewardsHandler{
				auth:   auth,
				bucket: bucket,
				ledger: ledger,
				system: code,
			},
		},
	}
}

type onBlockHandler struct {
	auth   x.Authenticator
	cycles CycleUpdater
	bucket producers.Bucket
	system aacsys.AccountName
}

var _ aacsys.Handler = (*onBlockHandler)(nil)

// Deliver credits the block producer and fills the shared pool up to the
// block time. Only the system account can account a block.
func (h *onBlockHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*OnBlockMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, h.system) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", h.system)
	}
	header := msg.Header

	if _, err := h.cycles.UpdateCycle(ctx, db, header.Timestamp); err != nil {
		return nil, errors.Wrap(err, "update cycle")
	}

	p, err := params.LoadOrDefault(db)
	if err != nil {
		return nil, err
	}

	switch prod, err := h.bucket.GetProducer(db, header.Producer); {
	case producers.ErrUnknownProducer.Is(err):
		aacsys.GetLogger(ctx).Debug("block of unregistered producer", "producer", header.Producer)
	case err != nil:
		return nil, err
	default:
		if prod.PerBlockPayments > math.MaxInt64-p.PaymentPerBlock {
			return nil, errors.Wrapf(errors.ErrOverflow, "payments of %s", prod.Owner)
		}
		prod.PerBlockPayments += p.PaymentPerBlock
		prod.LastProducedBlockTime = header.Timestamp
		if err := h.bucket.Put(db, prod); err != nil {
			return nil, errors.Wrap(err, "save producer")
		}
	}

	added, err := p.FillBucket(header.Timestamp)
	if err != nil {
		return nil, err
	}
	if err := params.Save(db, p); err != nil {
		return nil, err
	}

	accruedBlocks.Inc()
	bucketFilled.Add(float64(added))
	aacsys.GetLogger(ctx).Debug("block accrued",
		"producer", header.Producer, "bucket", p.SharedBucket, "added", added)
	return &aacsys.DeliverResult{}, nil
}

type claimRewardsHandler struct {
	auth   x.Authenticator
	bucket producers.Bucket
	ledger Ledger
	system aacsys.AccountName
}

var _ aacsys.Handler = (*claimRewardsHandler)(nil)

// Deliver pays the producer its accrued block payments and its share of the
// pool.
func (h *claimRewardsHandler) Deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	res, err := h.deliver(ctx, db, act)
	if err != nil {
		claims.WithLabelValues("rejected").Inc()
		return nil, err
	}
	claims.WithLabelValues("paid").Inc()
	return res, nil
}

func (h *claimRewardsHandler) deliver(ctx aacsys.Context, db aacsys.KVStore, act aacsys.Action) (*aacsys.DeliverResult, error) {
	msg, ok := act.(*ClaimRewardsMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", act)
	}
	if !h.auth.HasAccount(ctx, msg.Owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "missing authority of %s", msg.Owner)
	}
	if aacsys.IsDeferred(ctx) {
		return nil, errors.Wrap(ErrInvalidContext, "cannot claim from a deferred or inline execution")
	}
	now, ok := aacsys.GetBlockTime(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrState, "block time not set")
	}

	prod, err := h.bucket.GetProducer(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	if !prod.Active {
		return nil, errors.Wrap(ErrInactiveProducer, string(msg.Owner))
	}
	if !prod.LastRewardsClaim.IsZero() {
		if elapsed, err := now.Since(prod.LastRewardsClaim); err != nil || elapsed < ClaimCooldown {
			return nil, errors.Wrapf(ErrClaimTooSoon, "last claim at %d", int64(prod.LastRewardsClaim))
		}
	}

	rewards := prod.PerBlockPayments

	eligible, aggregate, err := h.payedVotes(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	if eligible && !aggregate.IsZero() {
		p, err := params.LoadOrDefault(db)
		if err != nil {
			return nil, err
		}
		share := new(uint256.Int).Mul(uint256.NewInt(prod.TotalVotes), uint256.NewInt(uint64(p.SharedBucket)))
		share.Div(share, aggregate)
		// The owner votes are part of the aggregate so the share never
		// exceeds the pool.
		amount := int64(share.Uint64())
		if rewards > math.MaxInt64-amount {
			return nil, errors.Wrapf(errors.ErrOverflow, "rewards of %s", msg.Owner)
		}
		rewards += amount
		p.SharedBucket -= amount
		if err := params.Save(db, p); err != nil {
			return nil, err
		}
	}

	if rewards <= 0 {
		return nil, errors.Wrap(ErrNoRewardsAvailable, string(msg.Owner))
	}

	prod.PerBlockPayments = 0
	prod.LastRewardsClaim = now
	if err := h.bucket.Put(db, prod); err != nil {
		return nil, errors.Wrap(err, "save producer")
	}

	if err := h.ledger.Transfer(ctx, db, h.system, msg.Owner, rewards, claimMemo); err != nil {
		return nil, errors.Wrap(err, "pay rewards")
	}

	claimedAmount.Add(float64(rewards))
	aacsys.GetLogger(ctx).Info("rewards claimed", "producer", msg.Owner, "amount", rewards)

	res := &aacsys.DeliverResult{Log: claimMemo}
	res.Tag("claim.owner", string(msg.Owner))
	res.Tag("claim.amount", strconv.FormatInt(rewards, 10))
	return res, nil
}

// payedVotes scans the most voted producers until PayedProducers active
// ones were seen. It returns whether the owner is among the scanned
// records and the votes of the active ones.
func (h *claimRewardsHandler) payedVotes(db aacsys.ReadOnlyKVStore, owner aacsys.AccountName) (bool, *uint256.Int, error) {
	it, err := h.bucket.ByVotes(db)
	if err != nil {
		return false, nil, err
	}
	defer it.Release()

	var (
		eligible  bool
		aggregate = new(uint256.Int)
	)
	for n := 0; n < PayedProducers; {
		p, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return false, nil, err
		}
		if p.Owner == owner {
			eligible = true
		}
		if p.Active {
			aggregate.Add(aggregate, uint256.NewInt(p.TotalVotes))
			n++
		}
	}
	return eligible, aggregate, nil
}
