package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "keutrack",
		Short:   "SAK EMKM bookkeeping for micro entities",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
