// Package ledger implements the account engine: validated deposits,
// withdrawals, and currency-converting transfers over an append-only
// transaction log. The engine is single-threaded by design; callers that
// share accounts across goroutines must serialize access per account,
// locking both transfer participants in ascending account-id order.
package ledger

import "errors"

// Operation errors. Validation failures are expected business outcomes:
// they are returned as values, the operation is a guaranteed no-op, and
// batch processing can continue past them.
var (
	// ErrNegativeAmount indicates a negative deposit or withdrawal amount.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrNonPositiveAmount indicates a zero or negative transfer amount.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	// ErrCurrencyMismatch indicates the supplied currency differs from the account's.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInsufficientFunds indicates the amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNoExchangeRate indicates no rate exists for the currency pair.
	ErrNoExchangeRate = errors.New("no exchange rate available")
)
