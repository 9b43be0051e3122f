package aacsys

import (
	"encoding/json"
	"time"

	"github.com/aacio/aacsys/errors"
)

// UnixTime is a point in time in seconds since the epoch. Block timestamps,
// cycle anchors and claim times all use it.
type UnixTime int64

// AsUnixTime truncates t to seconds.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// Time returns the moment as a time.Time in the local zone.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// IsZero reports whether the time is unset.
func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add moves the time by d, truncated to whole seconds.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// Since returns the seconds elapsed from earlier to t. Time going backwards
// is an ErrState.
func (t UnixTime) Since(earlier UnixTime) (int64, error) {
	if t < earlier {
		return 0, errors.Wrapf(errors.ErrState, "time %d is before %d", t, earlier)
	}
	return int64(t - earlier), nil
}

// Validate rejects times before the epoch.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrapf(errors.ErrState, "time %d before epoch", t)
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().UTC().Format(time.RFC3339)
}

// UnmarshalJSON accepts either a number of seconds or an RFC 3339 string.
// Genesis files use the latter.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var secs int64
	if err := json.Unmarshal(raw, &secs); err != nil {
		var stamp time.Time
		if err := json.Unmarshal(raw, &stamp); err != nil {
			return errors.Wrap(errors.ErrInput, "invalid time format")
		}
		secs = stamp.Unix()
	}
	if secs < 0 {
		return errors.Wrap(errors.ErrInput, "time before epoch")
	}
	*t = UnixTime(secs)
	return nil
}
