package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/user"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data", "users.json"), zerolog.Nop())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newStore(t)

	u := user.New(1, "Ann", "Lee")
	a := ledger.NewAccount(1, dec("500"), "USD")
	b := ledger.NewAccount(2, dec("0"), "EUR")
	u.AddAccount(a)
	u.AddAccount(b)
	require.NoError(t, a.Deposit(dec("100"), "USD"))
	_, err := a.Transfer(b, dec("99"), "USD")
	require.NoError(t, err)

	require.NoError(t, st.Save([]*user.User{u}))

	users, err := st.Load()
	require.NoError(t, err)
	require.Len(t, users, 1)

	got := users[0]
	assert.Equal(t, "Ann", got.Username)

	gotA, ok := got.AccountByID(1)
	require.True(t, ok)
	assert.True(t, gotA.Balance().Equal(dec("501")))
	require.Len(t, gotA.Transactions(), 2)
	assert.Equal(t, "transfer_to_2", gotA.Transactions()[1].Kind())

	gotB, ok := got.AccountByID(2)
	require.True(t, ok)
	assert.True(t, gotB.Balance().Equal(dec("91.08")))
	require.Len(t, gotB.Transactions(), 1)
	assert.Equal(t, "transfer_from_1", gotB.Transactions()[0].Kind())
}

func TestLoadMissingFile(t *testing.T) {
	st := newStore(t)

	users, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSaveIsAtomic(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Save(nil))

	// No temp file is left behind after a successful save.
	_, err := os.Stat(st.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(st.Path())
	assert.NoError(t, err)
}

func TestAmountsStoredAsNumbers(t *testing.T) {
	st := newStore(t)

	u := user.New(1, "Ann", "Lee")
	u.AddAccount(ledger.NewAccount(1, dec("150"), "USD"))
	require.NoError(t, st.Save([]*user.User{u}))

	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"balance": 150`)
	assert.NotContains(t, string(raw), `"balance": "150"`)
}

func TestLoadSkipsUnreadableUser(t *testing.T) {
	st := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))

	// The second user's account is missing account_id and must be skipped;
	// the first loads fine.
	snapshot := `[
		{"user_id": 1, "username": "Ann", "surname": "Lee", "accounts": [
			{"account_id": 1, "balance": 500, "currency": "USD", "transactions": []}
		]},
		{"user_id": 2, "username": "Bob", "surname": "Ray", "accounts": [
			{"balance": 100, "currency": "USD", "transactions": []}
		]}
	]`
	require.NoError(t, os.WriteFile(st.Path(), []byte(snapshot), 0o644))

	users, err := st.Load()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
}

func TestLoadCorruptSnapshot(t *testing.T) {
	st := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(st.Path()), 0o755))
	require.NoError(t, os.WriteFile(st.Path(), []byte("not json"), 0o644))

	_, err := st.Load()
	assert.Error(t, err)
}
