package aacsys

import (
	"encoding/json"

	"github.com/tendermint/tendermint/libs/common"
)

// Handler is a core engine that can process a few specific actions
// This could represent "claim rewards", or "register a producer"
type Handler interface {
	Deliver(ctx Context, db KVStore, act Action) (*DeliverResult, error)
}

// HandlerFunc allows to use a function as a Handler.
type HandlerFunc func(ctx Context, db KVStore, act Action) (*DeliverResult, error)

// Deliver calls fn.
func (fn HandlerFunc) Deliver(ctx Context, db KVStore, act Action) (*DeliverResult, error) {
	return fn(ctx, db, act)
}

// DeliverResult captures any non-error result of an action.
type DeliverResult struct {
	// Log is human-readable informational string
	Log string
	// Tags are used to index the action, for example the emitted
	// transfers.
	Tags []common.KVPair
}

// Tag appends a tag to the result.
func (r *DeliverResult) Tag(key, value string) {
	r.Tags = append(r.Tags, common.KVPair{Key: []byte(key), Value: []byte(value)})
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// Route binds an action identity to the schema of its payload and to the
// handler processing it.
type Route struct {
	Code AccountName
	Name ActionName
	// NewAction returns an empty payload the action data is decoded into.
	NewAction func() Action
	Handler   Handler
}
