package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newTransferCommand() *cobra.Command {
	var userID int
	var fromID int
	var toID int
	var amountStr string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer funds between two of a user's accounts",
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
			from, ok := u.AccountByID(fromID)
			if !ok {
				return fmt.Errorf("account %d not found", fromID)
			}
			to, ok := u.AccountByID(toID)
			if !ok {
				return fmt.Errorf("account %d not found", toID)
			}

			res, opErr := from.Transfer(to, amount, from.Currency())
			env.audit(userID, "transfer", fmt.Sprintf("account %d -> %d amount %s %s", fromID, toID, amount, from.Currency()), opErr)
			if opErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Transfer error: %v\n", opErr)
				return nil
			}

			if err := env.store.Save(users); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transfer completed. %s\n", res)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")
	cmd.Flags().IntVar(&fromID, "from-id", 0, "source account id (required)")
	_ = cmd.MarkFlagRequired("from-id")
	cmd.Flags().IntVar(&toID, "to-id", 0, "destination account id (required)")
	_ = cmd.MarkFlagRequired("to-id")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount in the source account's currency (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
