package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Export is the snapshot form of an Account. The scalar fields are pointers
// so a missing key in a decoded snapshot is distinguishable from a zero
// value.
type Export struct {
	AccountID    *int             `json:"account_id"`
	Balance      *decimal.Decimal `json:"balance"`
	Currency     *string          `json:"currency"`
	Transactions []model.Export   `json:"transactions"`
}

// Export snapshots the account with its transactions in log order.
func (a *Account) Export() Export {
	txs := make([]model.Export, len(a.transactions))
	for i, tx := range a.transactions {
		txs[i] = tx.Export()
	}
	id := a.id
	balance := a.balance
	currency := a.currency
	return Export{
		AccountID:    &id,
		Balance:      &balance,
		Currency:     &currency,
		Transactions: txs,
	}
}

// FromExport rebuilds an account from a snapshot. The snapshot balance is
// trusted as ground truth; the log is re-attached in order without being
// replayed. Missing required keys or an unparseable transaction fail the
// whole account.
func FromExport(e Export) (*Account, error) {
	if e.AccountID == nil {
		return nil, errors.New("snapshot missing account_id")
	}
	if e.Balance == nil {
		return nil, errors.New("snapshot missing balance")
	}
	if e.Currency == nil {
		return nil, errors.New("snapshot missing currency")
	}

	a := NewAccount(*e.AccountID, *e.Balance, *e.Currency)
	for i, te := range e.Transactions {
		tx, err := model.FromExport(te)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		a.transactions = append(a.transactions, tx)
	}
	return a, nil
}
