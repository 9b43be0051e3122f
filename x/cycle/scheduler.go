package cycle

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x/params"
)

// Elector refreshes the producer schedule at the start of a cycle. It is
// responsible for recording the anchor as the new FirstBlockTimeInCycle.
type Elector interface {
	UpdateElectedProducers(ctx aacsys.Context, db aacsys.KVStore, anchor aacsys.UnixTime) error
}

// Scheduler triggers the Elector on cycle boundaries.
type Scheduler struct {
	elector Elector
}

// NewScheduler returns a scheduler notifying given elector.
func NewScheduler(e Elector) *Scheduler {
	return &Scheduler{elector: e}
}

// UpdateCycle checks whether a block produced at given time starts a new
// cycle and if so, runs the election. It returns true if the election was
// run.
func (s *Scheduler) UpdateCycle(ctx aacsys.Context, db aacsys.KVStore, blockTime aacsys.UnixTime) (bool, error) {
	p, err := params.LoadOrDefault(db)
	if err != nil {
		return false, err
	}

	if p.FirstBlockTimeInCycle.IsZero() {
		// First block of the chain. The shared pool starts filling now.
		p.LastBucketFillTime = blockTime
		if err := params.Save(db, p); err != nil {
			return false, err
		}
		if err := s.elector.UpdateElectedProducers(ctx, db, blockTime); err != nil {
			return false, errors.Wrap(err, "genesis election")
		}
		aacsys.GetLogger(ctx).Info("first cycle started", "time", int64(blockTime))
		return true, nil
	}

	elapsed, err := blockTime.Since(p.FirstBlockTimeInCycle)
	if err != nil {
		return false, errors.Wrap(err, "cycle start")
	}
	if elapsed < p.BlocksPerCycle {
		return false, nil
	}

	anchor := blockTime - aacsys.UnixTime(elapsed%p.BlocksPerCycle)
	if err := s.elector.UpdateElectedProducers(ctx, db, anchor); err != nil {
		return false, errors.Wrap(err, "election")
	}
	aacsys.GetLogger(ctx).Info("cycle refresh",
		"anchor", int64(anchor), "skipped", elapsed/p.BlocksPerCycle-1)
	return true, nil
}
