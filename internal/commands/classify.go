package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/classify"
)

func newClassifyCommand() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "classify <name>",
		Short: "Classify an account name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := classify.Classify(args[0], code)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:           %s\n", c.Type)
			fmt.Fprintf(out, "normal balance: %s\n", c.NormalBalance)
			fmt.Fprintf(out, "category:       %s\n", c.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "account code (1xxx..5xxx)")

	return cmd
}
