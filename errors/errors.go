package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all packages. Extensions register their own codes
// starting at 100.
var (
	// ErrUnauthorized means the action lacks the authorization of the
	// account it acts for.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound means a looked up entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrModel means a stored entity failed validation.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate means an entity with the same key already exists.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that a correct program never reaches.
	ErrHuman = Register(7, "coding error")

	// ErrEmpty means a required value is missing.
	ErrEmpty = Register(9, "value is empty")

	// ErrState means the stored state does not allow the operation.
	ErrState = Register(10, "invalid state")

	// ErrType means a value is not of the expected type.
	ErrType = Register(11, "invalid type")

	// ErrAmount means a token quantity is not acceptable.
	ErrAmount = Register(12, "invalid amount")

	// ErrInput means the action payload is malformed.
	ErrInput = Register(13, "invalid input")

	// ErrOverflow means an arithmetic result does not fit its type.
	ErrOverflow = Register(14, "an operation cannot be completed due to value overflow")

	// ErrDatabase means the storage layer failed.
	ErrDatabase = Register(15, "database error")

	// ErrIteratorDone is returned by an iterator that has no more
	// elements.
	ErrIteratorDone = Register(16, "iterator done")

	// ErrNotImplemented means the action is routed to a collaborator that
	// is not configured.
	ErrNotImplemented = Register(17, "not implemented")

	// ErrPanic wraps a recovered panic.
	ErrPanic = Register(111222, "panic")
)

// registry holds every root error by its code. Code 1 is reserved for errors
// that carry no code at all.
var registry = map[uint32]*Error{
	internalCode: {code: internalCode, desc: internalLog},
}

// Register declares a new root error. It panics if the code is already
// taken, so it must only be called while initializing package variables.
func Register(code uint32, description string) *Error {
	if e, ok := registry[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a root error. Errors created at runtime wrap one of the root
// errors, which classifies them and provides their result code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the code this root error was registered with.
func (e Error) Code() uint32 {
	return e.code
}

// Is reports whether err is e or wraps it. A nil *Error matches only nil
// errors, including typed nil pointers.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Newf is a shortcut for Wrapf(e, ...).
func (e *Error) Newf(description string, args ...interface{}) error {
	return Wrapf(e, description, args...)
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Wrap adds description to err. The innermost wrap records a stack trace.
// An error that does not wrap a root error is reported with the internal
// code 1. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic assigned to err. It must be called
// with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType wraps err with the Go type name of obj.
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// causer is implemented by errors that wrap another error.
type causer interface {
	Cause() error
}
