package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Construction errors. A malformed record is a programming fault, not a
// business outcome, so these are returned hard rather than folded into an
// operation result.
var (
	ErrBadID         = errors.New("transaction id must be positive")
	ErrEmptyKind     = errors.New("transaction kind must not be empty")
	ErrZeroTimestamp = errors.New("transaction timestamp must be set")
	ErrEmptyCurrency = errors.New("transaction currency must not be empty")
)

// Transaction is one balance-affecting event on an account. Fields are
// immutable after construction. The id is unique only within the owning
// account's log, and the amount is recorded in the owning account's
// currency (for the credit leg of a transfer that is the converted amount).
type Transaction struct {
	id        int
	amount    decimal.Decimal
	kind      string
	timestamp time.Time
	currency  string
}

// New validates and builds a Transaction. The kind must be non-blank after
// trimming whitespace and the timestamp must be a real instant.
func New(id int, amount decimal.Decimal, kind string, timestamp time.Time, currency string) (Transaction, error) {
	if id <= 0 {
		return Transaction{}, ErrBadID
	}
	if strings.TrimSpace(kind) == "" {
		return Transaction{}, ErrEmptyKind
	}
	if timestamp.IsZero() {
		return Transaction{}, ErrZeroTimestamp
	}
	if currency == "" {
		return Transaction{}, ErrEmptyCurrency
	}
	return Transaction{
		id:        id,
		amount:    amount,
		kind:      kind,
		timestamp: timestamp,
		currency:  currency,
	}, nil
}

// ID returns the per-account record id.
func (t Transaction) ID() int { return t.id }

// Amount returns the magnitude moved by this event.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Kind returns the event kind, e.g. "deposit" or "transfer_to_3".
func (t Transaction) Kind() string { return t.kind }

// Timestamp returns the wall-clock instant the record was created.
func (t Transaction) Timestamp() time.Time { return t.timestamp }

// Currency returns the currency the amount is recorded in.
func (t Transaction) Currency() string { return t.currency }

// Detail returns a one-line human-readable description of the record.
func (t Transaction) Detail() string {
	return fmt.Sprintf("Amount: %s %s, type: %s, time: %s",
		t.amount, t.currency, t.kind, t.timestamp.Format(time.RFC3339))
}
