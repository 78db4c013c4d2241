package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/model"
)

// Account owns a balance, a fixed currency, and an ordered append-only log
// of transaction records. Every successful mutation pairs exactly one
// balance change with exactly one appended record; a failed operation
// changes neither, so the balance always equals the initial balance plus a
// replay of the log.
type Account struct {
	id           int
	balance      decimal.Decimal
	currency     string
	transactions []model.Transaction
}

// NewAccount creates an account. The initial balance is taken as-is, even
// negative; only withdrawals and transfers enforce sufficiency, and only at
// call time. The currency never changes after construction.
func NewAccount(id int, balance decimal.Decimal, currency string) *Account {
	return &Account{id: id, balance: balance, currency: currency}
}

// ID returns the externally assigned account id.
func (a *Account) ID() int { return a.id }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Currency returns the account currency.
func (a *Account) Currency() string { return a.currency }

// Transactions returns a copy of the log, oldest first.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit adds amount to the balance and appends a deposit record. The
// check order is part of the contract: sign first, then currency.
func (a *Account) Deposit(amount decimal.Decimal, currency string) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if currency != a.currency {
		return ErrCurrencyMismatch
	}

	record, err := model.New(len(a.transactions)+1, amount, model.KindDeposit, time.Now(), a.currency)
	if err != nil {
		return fmt.Errorf("building deposit record: %w", err)
	}

	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, record)
	return nil
}

// Withdraw subtracts amount from the balance and appends a withdraw record.
// Checks short-circuit in order: sign, currency, funds.
func (a *Account) Withdraw(amount decimal.Decimal, currency string) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if currency != a.currency {
		return ErrCurrencyMismatch
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	record, err := model.New(len(a.transactions)+1, amount, model.KindWithdraw, time.Now(), a.currency)
	if err != nil {
		return fmt.Errorf("building withdraw record: %w", err)
	}

	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, record)
	return nil
}

// TransferResult reports a completed transfer for presentation.
type TransferResult struct {
	Amount       decimal.Decimal
	FromCurrency string
	Converted    decimal.Decimal
	ToCurrency   string
}

// String renders "amount FROM → converted TO", dropping the decimal digits
// of the converted amount when it has no fractional part.
func (r TransferResult) String() string {
	converted := r.Converted.String()
	if r.Converted.IsInteger() {
		converted = r.Converted.Truncate(0).String()
	}
	return fmt.Sprintf("%s %s → %s %s", r.Amount, r.FromCurrency, converted, r.ToCurrency)
}

// Transfer moves amount to target, converting into the target's currency at
// the fixed table rate, rounded half-to-even at 2 decimal places. Checks
// short-circuit in order: sign, currency, funds, rate. On success both
// balances and both logs update together; on failure neither account
// changes. Both records are built before any mutation so a construction
// fault cannot leave one leg applied.
func (a *Account) Transfer(target *Account, amount decimal.Decimal, currency string) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, ErrNonPositiveAmount
	}
	if currency != a.currency {
		return TransferResult{}, ErrCurrencyMismatch
	}
	if amount.GreaterThan(a.balance) {
		return TransferResult{}, ErrInsufficientFunds
	}
	rate, ok := Rate(a.currency, target.currency)
	if !ok {
		return TransferResult{}, ErrNoExchangeRate
	}

	converted := amount.Mul(rate).RoundBank(2)
	now := time.Now()

	debit, err := model.New(len(a.transactions)+1, amount, model.TransferToKind(target.id), now, a.currency)
	if err != nil {
		return TransferResult{}, fmt.Errorf("building debit record: %w", err)
	}

	creditID := len(target.transactions) + 1
	if target == a {
		// Self-transfer: the debit record lands first, shifting the next id.
		creditID++
	}
	credit, err := model.New(creditID, converted, model.TransferFromKind(a.id), now, target.currency)
	if err != nil {
		return TransferResult{}, fmt.Errorf("building credit record: %w", err)
	}

	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, debit)
	target.balance = target.balance.Add(converted)
	target.transactions = append(target.transactions, credit)

	return TransferResult{
		Amount:       amount,
		FromCurrency: a.currency,
		Converted:    converted,
		ToCurrency:   target.currency,
	}, nil
}
