package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/importer"
	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/user"
)

func newImportCommand() *cobra.Command {
	var userID int
	var accountID int

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replay statement CSVs against an account",
		Long: "Replays deposit/withdraw rows from a statement CSV through the ledger\n" +
			"engine. With no file argument, processes every CSV in import/ and moves\n" +
			"each to import/processed/.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			users, err := env.store.Load()
			if err != nil {
				return err
			}

			u, err := findUser(users, userID)
			if err != nil {
				return err
			}
			acct, ok := u.AccountByID(accountID)
			if !ok {
				return fmt.Errorf("account %d not found", accountID)
			}

			if len(args) == 1 {
				applied, err := importFile(cmd, env, u, acct, args[0])
				if err != nil {
					return err
				}
				if applied > 0 {
					return env.store.Save(users)
				}
				return nil
			}

			files, err := importer.Scan(env.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No statement files to import")
				return nil
			}

			total := 0
			for _, fi := range files {
				applied, err := importFile(cmd, env, u, acct, fi.Path)
				if err != nil {
					return err
				}
				total += applied
				if err := importer.MarkProcessed(env.dir, fi.Name); err != nil {
					return err
				}
			}
			if total > 0 {
				return env.store.Save(users)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	cmd.Flags().IntVar(&accountID, "account-id", 0, "account id (required)")
	_ = cmd.MarkFlagRequired("account-id")

	return cmd
}

func importFile(cmd *cobra.Command, env *env, u *user.User, acct *ledger.Account, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := importer.ReadRows(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	applied, rejected := importer.Apply(acct, rows)
	env.audit(u.ID, "import", fmt.Sprintf("%s: %d applied, %d rejected", path, applied, len(rejected)), nil)

	fmt.Fprintf(cmd.OutOrStdout(), "%s: applied %d of %d rows\n", path, applied, len(rows))
	for _, rerr := range rejected {
		fmt.Fprintf(cmd.OutOrStdout(), "  rejected %v\n", rerr)
	}
	return applied, nil
}
