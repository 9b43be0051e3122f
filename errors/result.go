package errors

import (
	"errors"
)

const (
	// SuccessCode is the result code of an action that completed without
	// an error.
	SuccessCode uint32 = 0

	// internalCode is reported for every error that was not registered
	// in this package or by an extension.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

// ResultInfo returns the code and the log line that describe the outcome of
// an action. Errors that do not carry a registered code are reported with
// code 1. Outside of the debug mode their message is replaced with a generic
// "internal error" so that no implementation detail leaks into the chain
// history.
func ResultInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessCode, ""
	}
	code := resultCode(err)
	if code != internalCode || debug {
		return code, err.Error()
	}
	return internalCode, internalLog
}

type coder interface {
	Code() uint32
}

// resultCode unwraps the error until a layer that declares its code is found.
func resultCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessCode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		c, ok := err.(causer)
		if !ok {
			return internalCode
		}
		err = c.Cause()
	}
}

// Redact replaces an error that does not wrap a registered root error, as
// well as a recovered panic, with a generic internal error.
//
// In debug mode the error is returned unchanged.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || resultCode(err) == internalCode {
		return errors.New(internalLog)
	}
	return err
}
