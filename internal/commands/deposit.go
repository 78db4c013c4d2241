package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDepositCommand() *cobra.Command {
	var userID int
	var accountID int
	var amountStr string
	var currency string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit funds into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Amount shape is checked at the boundary; sign, currency, and
			// funds checks belong to the engine.
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

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

			cur := currency
			if cur == "" {
				cur = acct.Currency()
			}

			opErr := acct.Deposit(amount, cur)
			env.audit(userID, "deposit", fmt.Sprintf("account %d amount %s %s", accountID, amount, cur), opErr)
			if opErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Deposit error: %v\n", opErr)
				return nil
			}

			if err := env.store.Save(users); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deposit successful: %s %s to account %d\n", amount, cur, accountID)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	cmd.Flags().IntVar(&accountID, "account-id", 0, "account id (required)")
	_ = cmd.MarkFlagRequired("account-id")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to deposit (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&currency, "currency", "", "deposit currency (defaults to the account currency)")

	return cmd
}
