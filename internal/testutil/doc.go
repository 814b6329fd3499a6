// Package testutil contains helpers used across tests to reduce
// boilerplate when asserting contract-violation panics and when
// checking captured source locations. These helpers are intentionally
// minimal and not intended for production usage.
package testutil
