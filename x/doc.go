/*
Package x contains some standard extensions

Extensions implement common functionality (Handler, Initializer, etc.)
as well as helpers shared by all of them, like the Authenticator used by
handlers to learn which accounts authorized the processed action.
*/
package x
