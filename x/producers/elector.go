package producers

import (
	"sort"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/gconf"
	"github.com/aacio/aacsys/x/params"
)

const (
	// ScheduleSize is the maximum number of producers in a schedule.
	ScheduleSize = 21

	schedulePkgName = "schedule"
)

// CurrentSchedule returns the last elected schedule. A chain that never
// elected a schedule returns an empty one with version zero.
func CurrentSchedule(db gconf.ReadStore) (*aacsys.ProducerSchedule, error) {
	var s aacsys.ProducerSchedule
	switch err := gconf.Load(db, schedulePkgName, &s); {
	case errors.ErrNotFound.Is(err):
		return &s, nil
	case err != nil:
		return nil, errors.Wrap(err, "load schedule")
	}
	return &s, nil
}

// Elector elects the producer schedule from the most voted active producers.
type Elector struct {
	bucket Bucket
}

// NewElector returns an elector reading the producer registry.
func NewElector() *Elector {
	return &Elector{bucket: NewBucket()}
}

// UpdateElectedProducers starts a new cycle at given time. The most voted
// active producers are elected and, if that set differs from the current
// one, stored as a new schedule version.
func (e *Elector) UpdateElectedProducers(ctx aacsys.Context, db aacsys.KVStore, anchor aacsys.UnixTime) error {
	elected, err := e.elect(db)
	if err != nil {
		return err
	}

	current, err := CurrentSchedule(db)
	if err != nil {
		return err
	}
	if len(elected.Producers) > 0 && !elected.Equal(current) {
		elected.Version = current.Version + 1
		if err := gconf.Save(db, schedulePkgName, elected); err != nil {
			return errors.Wrap(err, "save schedule")
		}
		aacsys.GetLogger(ctx).Info("new producer schedule",
			"version", elected.Version, "producers", len(elected.Producers))
	}

	p, err := params.LoadOrDefault(db)
	if err != nil {
		return err
	}
	p.FirstBlockTimeInCycle = anchor
	if err := params.Save(db, p); err != nil {
		return err
	}
	aacsys.GetLogger(ctx).Debug("cycle refresh", "anchor", anchor)
	return nil
}

func (e *Elector) elect(db aacsys.ReadOnlyKVStore) (*aacsys.ProducerSchedule, error) {
	it, err := e.bucket.ByVotes(db)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var s aacsys.ProducerSchedule
	for len(s.Producers) < ScheduleSize {
		p, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		if p.TotalVotes == 0 {
			// everyone left has no votes either
			break
		}
		if !p.Active {
			continue
		}
		s.Producers = append(s.Producers, aacsys.ProducerKey{
			ProducerName:    p.Owner,
			BlockSigningKey: p.ProducerKey,
		})
	}
	sort.Slice(s.Producers, func(i, j int) bool {
		return s.Producers[i].ProducerName < s.Producers[j].ProducerName
	})
	return &s, nil
}
