// Package commands wires the CLI to the ledger engine. Commands load the
// snapshot, run one engine operation, and save only when it succeeded;
// engine rejections are printed as messages, not command errors, so batch
// scripting can continue past them.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankbook",
		Short:   "Multi-currency account ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "project directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newRegisterCommand(),
		newLoginCommand(),
		newCreateAccountCommand(),
		newDepositCommand(),
		newWithdrawCommand(),
		newTransferCommand(),
		newSummaryCommand(),
		newImportCommand(),
	)

	return rootCmd
}
