/*
Package aacsys defines the interfaces shared by the system contract
extensions: storage, actions, handlers, block headers and context helpers.

Request scoped data travels in a context.Context from the application through
the dispatcher to the handlers. Every value kept in the context comes with a
setter and a getter:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

Setters of values that must not change during a block, such as the block
time, panic when the value is already set.
*/
package aacsys
