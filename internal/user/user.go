// Package user groups accounts under one person and provides aggregate
// reporting over them. It holds no decision logic of its own; all balance
// rules live in the ledger engine.
package user

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

// User owns a collection of accounts.
type User struct {
	ID       int
	Username string
	Surname  string
	Accounts []*ledger.Account
}

// New creates a user with no accounts.
func New(id int, username, surname string) *User {
	return &User{ID: id, Username: username, Surname: surname}
}

// AddAccount appends an account to the user's collection. Account id
// uniqueness is the caller's concern.
func (u *User) AddAccount(a *ledger.Account) {
	u.Accounts = append(u.Accounts, a)
}

// AccountByID returns the first account with the given id.
func (u *User) AccountByID(id int) (*ledger.Account, bool) {
	for _, a := range u.Accounts {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// TotalBalance sums balances across all accounts. The sum is numeric only:
// currencies are not converted, matching the summary report.
func (u *User) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range u.Accounts {
		total = total.Add(a.Balance())
	}
	return total
}

// BalancesByCurrency groups account balances by currency code.
func (u *User) BalancesByCurrency() map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, a := range u.Accounts {
		balances[a.Currency()] = balances[a.Currency()].Add(a.Balance())
	}
	return balances
}

// WriteSummary renders the user report: identity, total and per-currency
// balances, then each account with its transaction log.
func (u *User) WriteSummary(w io.Writer) {
	fmt.Fprintln(w, "=== User report ===")
	fmt.Fprintf(w, "Name: %s %s\n", u.Username, u.Surname)
	fmt.Fprintf(w, "User ID: %d\n", u.ID)
	fmt.Fprintf(w, "Total balance: %s\n", u.TotalBalance())

	fmt.Fprintln(w, "Balances by currency:")
	balances := u.BalancesByCurrency()
	currencies := make([]string, 0, len(balances))
	for c := range balances {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	for _, c := range currencies {
		fmt.Fprintf(w, "  %s: %s\n", c, balances[c])
	}

	fmt.Fprintln(w, "--- Accounts ---")
	for _, a := range u.Accounts {
		fmt.Fprintf(w, "account %d: %s %s\n", a.ID(), a.Balance(), a.Currency())
		txs := a.Transactions()
		if len(txs) == 0 {
			fmt.Fprintln(w, "  (no transactions)")
			continue
		}
		for _, tx := range txs {
			fmt.Fprintf(w, "  %s\n", tx.Detail())
		}
	}
}
