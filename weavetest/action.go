package weavetest

import "github.com/aacio/aacsys"

// Action is a mock implementing aacsys.Action interface. Its binary form is
// the raw payload it was created with.
type Action struct {
	Payload []byte
	// Err if set is returned by Validate.
	Err error
}

var _ aacsys.Action = (*Action)(nil)

func (a *Action) Marshal() ([]byte, error) {
	return a.Payload, nil
}

func (a *Action) Unmarshal(raw []byte) error {
	a.Payload = append([]byte(nil), raw...)
	return nil
}

func (a *Action) Validate() error {
	return a.Err
}
