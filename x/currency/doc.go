// Package currency implements the system token ledger: balances of a single
// symbol, transfers between accounts and issuance by the token account.
package currency
