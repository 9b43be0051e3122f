/*
Package native declares the account management actions the chain applies
natively. The system contract only receives them as notifications: payloads
are decoded and validated, but no state is kept here.
*/
package native
