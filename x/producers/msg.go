package producers

import (
	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/codec"
	"github.com/aacio/aacsys/errors"
)

// Action names handled by this package.
const (
	ActionRegProducer   aacsys.ActionName = "regproducer"
	ActionUnregProducer aacsys.ActionName = "unregprod"
)

// RegProducerMsg registers the producer or updates its registration.
type RegProducerMsg struct {
	Producer    aacsys.AccountName
	ProducerKey []byte
	URL         string
}

var _ aacsys.Action = (*RegProducerMsg)(nil)

func (m *RegProducerMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *RegProducerMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the message is well formed.
func (m *RegProducerMsg) Validate() error {
	if err := m.Producer.Validate(); err != nil {
		return errors.Wrap(err, "producer")
	}
	if len(m.ProducerKey) == 0 {
		return errors.Wrap(errors.ErrEmpty, "producer key")
	}
	if len(m.URL) > maxURLLength {
		return errors.Wrap(errors.ErrInput, "url too long")
	}
	return nil
}

// UnregProducerMsg deactivates the producer.
type UnregProducerMsg struct {
	Producer aacsys.AccountName
}

var _ aacsys.Action = (*UnregProducerMsg)(nil)

func (m *UnregProducerMsg) Marshal() ([]byte, error) { return codec.Marshal(m) }

func (m *UnregProducerMsg) Unmarshal(raw []byte) error { return codec.Unmarshal(raw, m) }

// Validate ensures the message is well formed.
func (m *UnregProducerMsg) Validate() error {
	return errors.Wrap(m.Producer.Validate(), "producer")
}
