/*
Package errors implements the error types used across aacsys.

Every failure an action can produce is classified by one of the root errors
registered in this package or in an extension package. A root error carries a
unique code, which is what the host uses to report an aborted action.

To create a new root error use Register(code, description). To report an
instance of an existing root error, wrap it:

	errors.Wrap(errors.ErrNotFound, "producer")
	errors.Wrapf(errors.ErrState, "block time %d before %d", a, b)

Wrap attaches a stack trace at the innermost wrap. Once you have an error, use
fmt to get more context:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

Use (*Error).Is to test an error kind. Is unwraps the error chain.
*/
package errors
