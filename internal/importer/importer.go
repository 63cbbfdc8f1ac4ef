// Package importer loads accounts and transactions from local CSV
// exports, so reports and balances can be computed without a reachable
// backend.
package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/keutrack-dev/keutrack/internal/chart"
	"github.com/keutrack-dev/keutrack/internal/model"
)

const (
	accountsFile     = "accounts.csv"
	transactionsFile = "transactions.csv"
)

// Book is a locally loaded set of accounts and transactions.
type Book struct {
	Accounts     []model.Account
	Transactions []model.Transaction
}

// LoadDir reads accounts.csv and transactions.csv from a directory.
// A missing transactions file is fine (an empty book); a missing
// accounts file is an error.
func LoadDir(dir string) (Book, error) {
	var book Book

	af, err := os.Open(filepath.Join(dir, accountsFile))
	if err != nil {
		return Book{}, fmt.Errorf("opening %s: %w", accountsFile, err)
	}
	defer af.Close()

	book.Accounts, err = chart.ReadAccounts(af)
	if err != nil {
		return Book{}, fmt.Errorf("reading %s: %w", accountsFile, err)
	}

	tf, err := os.Open(filepath.Join(dir, transactionsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return Book{}, fmt.Errorf("opening %s: %w", transactionsFile, err)
	}
	defer tf.Close()

	book.Transactions, err = ReadTransactions(tf)
	if err != nil {
		return Book{}, fmt.Errorf("reading %s: %w", transactionsFile, err)
	}
	return book, nil
}

// SaveDir writes a book back out as accounts.csv and transactions.csv.
func SaveDir(dir string, book Book) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	af, err := os.Create(filepath.Join(dir, accountsFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", accountsFile, err)
	}
	defer af.Close()
	if err := chart.WriteAccounts(af, book.Accounts); err != nil {
		return fmt.Errorf("writing %s: %w", accountsFile, err)
	}

	tf, err := os.Create(filepath.Join(dir, transactionsFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", transactionsFile, err)
	}
	defer tf.Close()
	if err := WriteTransactions(tf, book.Transactions); err != nil {
		return fmt.Errorf("writing %s: %w", transactionsFile, err)
	}
	return nil
}
