package aacsys

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

type contextKey int // local to the aacsys module

const (
	contextKeyBlockTime contextKey = iota
	contextKeyLogger
	contextKeySender
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

// WithBlockTime sets the time of the block being processed. This is the
// "now" of every action. Panics if already set.
func WithBlockTime(ctx Context, t UnixTime) Context {
	if _, ok := GetBlockTime(ctx); ok {
		panic("Block time already set")
	}
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// GetBlockTime returns the block time if set.
func GetBlockTime(ctx Context) (UnixTime, bool) {
	val, ok := ctx.Value(contextKeyBlockTime).(UnixTime)
	return val, ok
}

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithSender marks the context as a deferred or inline execution triggered
// by given account. Top level actions have no sender.
func WithSender(ctx Context, sender AccountName) Context {
	return context.WithValue(ctx, contextKeySender, sender)
}

// CurrentSender returns the account that scheduled the current execution or
// an empty name for a top level action.
func CurrentSender(ctx Context) AccountName {
	val, _ := ctx.Value(contextKeySender).(AccountName)
	return val
}

// IsDeferred returns true if the current execution was not directly signed,
// but scheduled by another action (deferred transaction or inline action).
func IsDeferred(ctx Context) bool {
	return CurrentSender(ctx) != ""
}
