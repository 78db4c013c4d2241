package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Look up a user and greet them",
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

			fmt.Fprintf(cmd.OutOrStdout(), "Hi, %s %s!\n", u.Username, u.Surname)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 0, "user id (required)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
