package aacsys

import (
	"encoding/hex"
	"encoding/json"

	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Checksum256 is a sha256 digest, used for block linkage and merkle roots.
type Checksum256 [32]byte

// MarshalJSON encodes the checksum as a hex string.
func (c Checksum256) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(c[:]))
}

// UnmarshalJSON decodes a hex string representation.
func (c *Checksum256) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "checksum must be a hex string")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "checksum must be a hex string")
	}
	if len(b) != len(c) {
		return errors.Wrapf(errors.ErrInput, "checksum must be %d bytes", len(c))
	}
	copy(c[:], b)
	return nil
}

// ProducerKey is a producer name together with the key it signs blocks
// with.
type ProducerKey struct {
	ProducerName    AccountName
	BlockSigningKey []byte
}

// ProducerSchedule is the ordered list of producers allowed to produce
// blocks.
type ProducerSchedule struct {
	Version   uint32
	Producers []ProducerKey
}

// Marshal serializes the schedule.
func (s *ProducerSchedule) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

// Unmarshal loads a serialized schedule.
func (s *ProducerSchedule) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, s)
}

// Equal returns true if both schedules list the same producers with the
// same keys in the same order. Versions are not compared.
func (s *ProducerSchedule) Equal(o *ProducerSchedule) bool {
	if len(s.Producers) != len(o.Producers) {
		return false
	}
	for i, p := range s.Producers {
		q := o.Producers[i]
		if p.ProducerName != q.ProducerName || string(p.BlockSigningKey) != string(q.BlockSigningKey) {
			return false
		}
	}
	return true
}

// Validate returns an error if any of the producers is malformed or
// repeated.
func (s *ProducerSchedule) Validate() error {
	seen := make(map[AccountName]struct{}, len(s.Producers))
	for i, p := range s.Producers {
		if err := p.ProducerName.Validate(); err != nil {
			return errors.Wrapf(err, "producer %d", i)
		}
		if _, ok := seen[p.ProducerName]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "producer %q", p.ProducerName)
		}
		seen[p.ProducerName] = struct{}{}
	}
	return nil
}

// BlockHeader is the header of a produced block. Field order is significant
// for serialization compatibility. Only Timestamp and Producer are
// interpreted by this module, the rest is passed through.
type BlockHeader struct {
	Previous         Checksum256
	Timestamp        UnixTime
	TransactionMRoot Checksum256
	ActionMRoot      Checksum256
	BlockMRoot       Checksum256
	Producer         AccountName
	ScheduleVersion  uint32
	NewProducers     *ProducerSchedule
}

// Validate returns an error if the header cannot be processed.
func (h *BlockHeader) Validate() error {
	if err := h.Timestamp.Validate(); err != nil {
		return errors.Wrap(err, "timestamp")
	}
	if err := h.Producer.Validate(); err != nil {
		return errors.Wrap(err, "producer")
	}
	if h.NewProducers != nil {
		if err := h.NewProducers.Validate(); err != nil {
			return errors.Wrap(err, "new producers")
		}
	}
	return nil
}
