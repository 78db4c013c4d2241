package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newWithdrawCommand() *cobra.Command {
	var userID int
	var accountID int
	var amountStr string
	var currency string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw funds from an account",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			opErr := acct.Withdraw(amount, cur)
			env.audit(userID, "withdraw", fmt.Sprintf("account %d amount %s %s", accountID, amount, cur), opErr)
			if opErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal error: %v\n", opErr)
				return nil
			}

			if err := env.store.Save(users); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal was successful: %s %s from account %d\n", amount, cur, accountID)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	cmd.Flags().IntVar(&accountID, "account-id", 0, "account id (required)")
	_ = cmd.MarkFlagRequired("account-id")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to withdraw (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&currency, "currency", "", "withdrawal currency (defaults to the account currency)")

	return cmd
}
