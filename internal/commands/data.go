package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/keutrack-dev/keutrack/internal/client"
	"github.com/keutrack-dev/keutrack/internal/config"
	"github.com/keutrack-dev/keutrack/internal/importer"
)

// dataFlags select where accounts and transactions come from: a local
// CSV directory, or the backend API configured in keutrack.yaml.
type dataFlags struct {
	dataDir    string
	configPath string
}

// loadBook fetches the book from the selected source.
func loadBook(ctx context.Context, flags dataFlags) (importer.Book, error) {
	if flags.dataDir != "" {
		return importer.LoadDir(flags.dataDir)
	}

	cfg, err := config.Load(flags.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		err = nil
	}
	if err != nil {
		return importer.Book{}, err
	}

	c := client.New(cfg.ClientConfig())
	if cfg.Auth.Token != "" {
		c.SetToken(cfg.Auth.Token)
	}

	accounts, err := c.Accounts(ctx)
	if err != nil {
		return importer.Book{}, fmt.Errorf("fetching accounts: %w", err)
	}
	txns, err := c.Transactions(ctx)
	if err != nil {
		return importer.Book{}, fmt.Errorf("fetching transactions: %w", err)
	}
	return importer.Book{Accounts: accounts, Transactions: txns}, nil
}
