package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/keutrack-dev/keutrack/internal/commands"
)

func main() {
	// A .env next to the binary may carry KEUTRACK_API_URL and
	// KEUTRACK_TOKEN; its absence is fine.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if os.Getenv("KEUTRACK_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
