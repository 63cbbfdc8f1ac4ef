package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/chart"
	"github.com/keutrack-dev/keutrack/internal/classify"
)

func newBalanceCommand() *cobra.Command {
	var flags dataFlags

	cmd := &cobra.Command{
		Use:   "balance <account>",
		Short: "Compute the final balance of one account (by ID or name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(cmd.Context(), flags)
			if err != nil {
				return err
			}

			svc := chart.NewService(book.Accounts)
			account, ok := svc.FindByName(args[0])
			if !ok {
				if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
					account, ok = svc.Get(id)
				}
			}
			if !ok {
				return fmt.Errorf("unknown account %q", args[0])
			}

			c := classify.Classify(account.Name, account.Code)
			balance := classify.Balance(account, book.Transactions)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s-normal): %.2f\n",
				account.Name, c.Type, c.NormalBalance, balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "read accounts.csv/transactions.csv from a directory instead of the API")
	cmd.Flags().StringVar(&flags.configPath, "config", "keutrack.yaml", "config file")

	return cmd
}
