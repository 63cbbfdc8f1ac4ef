package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/chart"
	"github.com/keutrack-dev/keutrack/internal/classify"
)

func newAccountsCommand() *cobra.Command {
	var flags dataFlags

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with classification and computed balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(cmd.Context(), flags)
			if err != nil {
				return err
			}

			svc := chart.NewService(book.Accounts)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tTYPE\tCATEGORY\tBALANCE")
			for _, account := range svc.All() {
				c := classify.Classify(account.Name, account.Code)
				balance := classify.Balance(account, book.Transactions)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
					account.Code, account.Name, c.Type, c.Category, balance)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "read accounts.csv/transactions.csv from a directory instead of the API")
	cmd.Flags().StringVar(&flags.configPath, "config", "keutrack.yaml", "config file")

	return cmd
}
