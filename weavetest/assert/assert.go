// Package assert provides the small set of test assertions shared by the
// system contract packages.
package assert

import (
	"reflect"
	"testing"
)

// Tester is the part of testing.TB the assertions rely on.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Typed nil pointers, maps and
// slices are nil as well.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of wrapped errors.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()
	return reflect.ValueOf(value).IsNil()
}

// Equal fails the test if two values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test if given function returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	if _, ok := catch(fn); !ok {
		t.Fatal("panic expected")
	}
}

// PanicsWith fails the test unless given function panics with an error value
// that matches want.
func PanicsWith(t testing.TB, want error, fn func()) {
	t.Helper()
	v, ok := catch(fn)
	if !ok {
		t.Fatal("panic expected")
		return
	}
	err, ok := v.(error)
	if !ok {
		t.Fatalf("want panic with an error, got %T: %v", v, v)
		return
	}
	IsErr(t, want, err)
}

func catch(fn func()) (v interface{}, panicked bool) {
	defer func() {
		if v = recover(); v != nil {
			panicked = true
		}
	}()
	fn()
	return nil, false
}

// IsErr fails the test unless got is want or wraps it.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	type comparator interface {
		Is(error) bool
	}
	if w, ok := want.(comparator); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
