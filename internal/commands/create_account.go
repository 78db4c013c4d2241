package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/ledger"
)

func newCreateAccountCommand() *cobra.Command {
	var userID int
	var accountID int
	var currency string

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create a bank account for a user",
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

			u.AddAccount(ledger.NewAccount(accountID, decimal.Zero, currency))

			if err := env.store.Save(users); err != nil {
				return err
			}

			env.audit(userID, "create-account", fmt.Sprintf("account %d (%s)", accountID, currency), nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %d (%s) for user %s\n", accountID, currency, u.Username)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	cmd.Flags().IntVar(&accountID, "account-id", 0, "account id (required)")
	_ = cmd.MarkFlagRequired("account-id")
	cmd.Flags().StringVar(&currency, "currency", "USD", "account currency")

	return cmd
}
