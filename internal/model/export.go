package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayout is the snapshot timestamp format: ISO-8601 at second precision.
const timeLayout = time.RFC3339

// Export is the serialized form of a Transaction.
type Export struct {
	TransactionID int             `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"transaction_type"`
	Currency      string          `json:"currency"`
	TimeStamp     string          `json:"time_stamp"`
}

// Export converts the record to its serialized form. Sub-second precision
// is dropped; everything else round-trips verbatim.
func (t Transaction) Export() Export {
	return Export{
		TransactionID: t.id,
		Amount:        t.amount,
		Type:          t.kind,
		Currency:      t.currency,
		TimeStamp:     t.timestamp.Truncate(time.Second).Format(timeLayout),
	}
}

// FromExport rebuilds a Transaction from its serialized form, re-running
// constructor validation.
func FromExport(e Export) (Transaction, error) {
	ts, err := time.Parse(timeLayout, e.TimeStamp)
	if err != nil {
		return Transaction{}, fmt.Errorf("parsing time_stamp %q: %w", e.TimeStamp, err)
	}
	return New(e.TransactionID, e.Amount, e.Type, ts, e.Currency)
}
