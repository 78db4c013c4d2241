package user

import (
	"fmt"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

// Export is the snapshot form of a User.
type Export struct {
	UserID   int             `json:"user_id"`
	Username string          `json:"username"`
	Surname  string          `json:"surname"`
	Accounts []ledger.Export `json:"accounts"`
}

// Export snapshots the user and every account in collection order.
func (u *User) Export() Export {
	accounts := make([]ledger.Export, len(u.Accounts))
	for i, a := range u.Accounts {
		accounts[i] = a.Export()
	}
	return Export{
		UserID:   u.ID,
		Username: u.Username,
		Surname:  u.Surname,
		Accounts: accounts,
	}
}

// FromExport rebuilds a user. Any account snapshot that fails to parse
// fails the whole user.
func FromExport(e Export) (*User, error) {
	u := New(e.UserID, e.Username, e.Surname)
	for i, ae := range e.Accounts {
		a, err := ledger.FromExport(ae)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i+1, err)
		}
		u.AddAccount(a)
	}
	return u, nil
}
