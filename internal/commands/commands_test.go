package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook-dev/bankbook/internal/auditlog"
	"github.com/bankbook-dev/bankbook/internal/config"
)

// run executes the CLI with args and returns its stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out := run(t, "init", dir)
	assert.Contains(t, out, "Initialized bankbook project")

	for _, d := range []string{"data", "logs", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "data/users.json", cfg.Data.File)
}

func TestWorkflow(t *testing.T) {
	dir := t.TempDir()
	run(t, "init", dir)

	out := run(t, "-C", dir, "register", "--username", "Ann", "--surname", "Lee")
	assert.Contains(t, out, "New user registered: Ann Lee, ID: 1")

	out = run(t, "-C", dir, "login", "--user-id", "1")
	assert.Contains(t, out, "Hi, Ann Lee!")

	run(t, "-C", dir, "create-account", "--user-id", "1", "--account-id", "1", "--currency", "USD")
	run(t, "-C", dir, "create-account", "--user-id", "1", "--account-id", "2", "--currency", "EUR")

	out = run(t, "-C", dir, "deposit", "--user-id", "1", "--account-id", "1", "--amount", "500")
	assert.Contains(t, out, "Deposit successful")

	// Business rejections are printed, not raised: the command still exits 0.
	out = run(t, "-C", dir, "withdraw", "--user-id", "1", "--account-id", "1", "--amount", "9999")
	assert.Contains(t, out, "Withdrawal error: insufficient funds")

	out = run(t, "-C", dir, "transfer", "--user-id", "1", "--from-id", "1", "--to-id", "2", "--amount", "99")
	assert.Contains(t, out, "Transfer completed. 99 USD → 91.08 EUR")

	out = run(t, "-C", dir, "summary", "--user-id", "1")
	assert.Contains(t, out, "account 1: 401 USD")
	assert.Contains(t, out, "account 2: 91.08 EUR")
	assert.Contains(t, out, "transfer_to_2")

	// Every mutation, including the rejected withdrawal, is audited.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, "register", entries[0].Action)
	assert.Equal(t, "insufficient funds", entries[4].Outcome)
	assert.Equal(t, "ok", entries[5].Outcome)
}

func TestFailedOperationIsNotSaved(t *testing.T) {
	dir := t.TempDir()
	run(t, "init", dir)
	run(t, "-C", dir, "register", "--username", "Ann", "--surname", "Lee")
	run(t, "-C", dir, "create-account", "--user-id", "1", "--account-id", "1", "--currency", "USD")
	run(t, "-C", dir, "deposit", "--user-id", "1", "--account-id", "1", "--amount", "500")

	out := run(t, "-C", dir, "deposit", "--user-id", "1", "--account-id", "1", "--amount", "10", "--currency", "EUR")
	assert.Contains(t, out, "Deposit error: currency mismatch")

	out = run(t, "-C", dir, "summary", "--user-id", "1")
	assert.Contains(t, out, "account 1: 500 USD")
	assert.NotContains(t, out, "EUR")
}

func TestUnknownUser(t *testing.T) {
	dir := t.TempDir()
	run(t, "init", dir)

	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"-C", dir, "login", "--user-id", "42"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user 42 not found")
}

func TestInvalidAmount(t *testing.T) {
	dir := t.TempDir()
	run(t, "init", dir)
	run(t, "-C", dir, "register", "--username", "Ann", "--surname", "Lee")
	run(t, "-C", dir, "create-account", "--user-id", "1", "--account-id", "1", "--currency", "USD")

	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"-C", dir, "deposit", "--user-id", "1", "--account-id", "1", "--amount", "lots"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	run(t, "init", dir)
	run(t, "-C", dir, "register", "--username", "Ann", "--surname", "Lee")
	run(t, "-C", dir, "create-account", "--user-id", "1", "--account-id", "1", "--currency", "USD")

	statement := "date,type,amount,currency\n" +
		"2025-01-03,deposit,100.00,USD\n" +
		"2025-01-04,withdraw,9999.00,USD\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "jan.csv"), []byte(statement), 0o644))

	out := run(t, "-C", dir, "import", "--user-id", "1", "--account-id", "1")
	assert.Contains(t, out, "applied 1 of 2 rows")
	assert.Contains(t, out, "insufficient funds")

	// The file moved to processed/ and the applied row was persisted.
	_, err := os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	assert.NoError(t, err)

	out = run(t, "-C", dir, "summary", "--user-id", "1")
	assert.Contains(t, out, "account 1: 100 USD")
}
