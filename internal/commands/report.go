package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/importer"
	"github.com/keutrack-dev/keutrack/internal/report"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}

	reports := []struct {
		use   string
		short string
		run   func(w io.Writer, book importer.Book) error
	}{
		{"journal", "General journal (jurnal umum)", runJournal},
		{"ledger", "Ledger (buku besar)", runLedger},
		{"trial-balance", "Trial balance (neraca saldo)", runTrialBalance},
		{"income-statement", "Income statement (laba rugi)", runIncomeStatement},
		{"balance-sheet", "Balance sheet (posisi keuangan)", runBalanceSheet},
	}

	for _, r := range reports {
		var flags dataFlags
		run := r.run
		cmd := &cobra.Command{
			Use:   r.use,
			Short: r.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				book, err := loadBook(cmd.Context(), flags)
				if err != nil {
					return err
				}
				return run(cmd.OutOrStdout(), book)
			},
		}
		cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "read accounts.csv/transactions.csv from a directory instead of the API")
		cmd.Flags().StringVar(&flags.configPath, "config", "keutrack.yaml", "config file")
		reportCmd.AddCommand(cmd)
	}

	return reportCmd
}

func runJournal(w io.Writer, book importer.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tAMOUNT")
	for _, e := range report.GeneralJournal(book.Accounts, book.Transactions) {
		date := ""
		if !e.Transaction.Date.IsZero() {
			date = e.Transaction.Date.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\n",
			date, e.Transaction.Description, e.DebitName, e.CreditName, e.Transaction.Amount)
	}
	return tw.Flush()
}

func runLedger(w io.Writer, book importer.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, la := range report.Ledger(book.Accounts, book.Transactions) {
		fmt.Fprintf(tw, "%s (%s)\topening\t\t%.2f\n",
			la.Account.Name, la.Classification.Category, la.Opening)
		for _, line := range la.Lines {
			date := ""
			if !line.Transaction.Date.IsZero() {
				date = line.Transaction.Date.Format("2006-01-02")
			}
			fmt.Fprintf(tw, "\t%s\t%+.2f\t%.2f\n", date, line.Effect, line.Balance)
		}
		fmt.Fprintf(tw, "\tclosing\t\t%.2f\n", la.Closing)
	}
	return tw.Flush()
}

func runTrialBalance(w io.Writer, book importer.Book) error {
	tb := report.ComputeTrialBalance(book.Accounts, book.Transactions)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tDEBIT\tCREDIT")
	for _, row := range tb.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Account.Code, row.Account.Name,
			row.Debit.StringFixed(2), row.Credit.StringFixed(2))
	}
	fmt.Fprintf(tw, "\tTOTAL\t%s\t%s\n", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2))
	return tw.Flush()
}

func runIncomeStatement(w io.Writer, book importer.Book) error {
	is := report.ComputeIncomeStatement(book.Accounts, book.Transactions)
	fmt.Fprintf(w, "revenue:    %s\n", is.Revenue.StringFixed(2))
	fmt.Fprintf(w, "expense:    %s\n", is.Expense.StringFixed(2))
	fmt.Fprintf(w, "net income: %s\n", is.NetIncome.StringFixed(2))
	return nil
}

func runBalanceSheet(w io.Writer, book importer.Book) error {
	bs := report.ComputeBalanceSheet(book.Accounts, book.Transactions)
	fmt.Fprintf(w, "assets:                 %s\n", bs.Assets.StringFixed(2))
	fmt.Fprintf(w, "liabilities:            %s\n", bs.Liabilities.StringFixed(2))
	fmt.Fprintf(w, "equity:                 %s\n", bs.Equity.StringFixed(2))
	fmt.Fprintf(w, "net income:             %s\n", bs.NetIncome.StringFixed(2))
	fmt.Fprintf(w, "liabilities and equity: %s\n", bs.LiabilitiesAndEquity.StringFixed(2))
	return nil
}
