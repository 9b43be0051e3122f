/*
Package app contains the system contract entry point.

A Dispatcher routes an action, identified by the contract account (code) and
the action name, to the handler registered for it. The Application wraps the
dispatcher with the storage lifecycle: every delivered action runs in its
own cache wrap, so that a failure leaves no partial writes behind.
*/
package app
