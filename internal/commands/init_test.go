package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keutrack-dev/keutrack/internal/chart"
	"github.com/keutrack-dev/keutrack/internal/importer"
)

func TestInit_CreatesConfigAndStarterChart(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "keutrack.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: http://localhost:2001/api")

	book, err := importer.LoadDir(filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.Len(t, book.Accounts, len(chart.DefaultChart()))
	assert.Empty(t, book.Transactions)
}

func TestInit_APIURLFlag(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir, "--api-url", "https://book.example.com/api")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "keutrack.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: https://book.example.com/api")
}
