package commands

import (
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's accounts and transaction history",
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

			u.WriteSummary(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
