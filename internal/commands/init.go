package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keutrack-dev/keutrack/internal/chart"
	"github.com/keutrack-dev/keutrack/internal/config"
	"github.com/keutrack-dev/keutrack/internal/importer"
)

func newInitCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new KeuTrack book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, baseURL); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized KeuTrack book in %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "api-url", "", "backend API base URL")

	return cmd
}

func runInit(dir, baseURL string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write keutrack.yaml.
	cfg := config.Default()
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if err := config.Save(filepath.Join(dir, config.Filename), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the local book with the default chart so offline reports
	// work before the first sync.
	book := importer.Book{Accounts: chart.DefaultChart()}
	if err := importer.SaveDir(filepath.Join(dir, "data"), book); err != nil {
		return fmt.Errorf("writing starter chart: %w", err)
	}
	return nil
}
