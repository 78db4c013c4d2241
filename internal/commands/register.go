package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/user"
)

func newRegisterCommand() *cobra.Command {
	var username string
	var surname string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			users, err := env.store.Load()
			if err != nil {
				return err
			}

			newID := 0
			for _, u := range users {
				if u.ID > newID {
					newID = u.ID
				}
			}
			newID++

			u := user.New(newID, username, surname)
			users = append(users, u)

			if err := env.store.Save(users); err != nil {
				return err
			}

			env.audit(newID, "register", username+" "+surname, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "New user registered: %s %s, ID: %d\n", username, surname, newID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "first name (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&surname, "surname", "", "last name (required)")
	_ = cmd.MarkFlagRequired("surname")

	return cmd
}
