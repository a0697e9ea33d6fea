package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryback/amglabor/internal/config"
)

func TestRunRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Build.Input = filepath.Join(dir, "daily_totals.csv")
	cfg.Build.Output = filepath.Join(dir, "daily_totals.json")
	cfg.Build.Rates = filepath.Join(dir, "rates.json")
	require.NoError(t, os.WriteFile(cfg.Build.Input,
		[]byte("weekOf,park,dow,hours\n2025-09-01,Bayside,Mon,8\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Build.Output)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "first build did not produce the report")

	// Editor-style save: write a temp file and rename it over the input.
	tmp := filepath.Join(dir, "daily_totals.csv.tmp")
	require.NoError(t, os.WriteFile(tmp,
		[]byte("weekOf,park,dow,hours\n2025-09-08,Bayside,Mon,6\n"), 0o644))
	require.NoError(t, os.Rename(tmp, cfg.Build.Input))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(cfg.Build.Output)
		return err == nil && strings.Contains(string(data), "2025-09-08")
	}, 5*time.Second, 20*time.Millisecond, "rebuild after rename did not happen")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestRunKeepsWatchingAfterFailedBuild(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Build.Input = filepath.Join(dir, "daily_totals.csv")
	cfg.Build.Output = filepath.Join(dir, "daily_totals.json")
	cfg.Build.Rates = filepath.Join(dir, "rates.json")
	// No input file yet: the first build fails, the watcher stays up.

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(cfg.Build.Input,
		[]byte("weekOf,park,dow,hours\n2025-09-01,Bayside,Mon,8\n"), 0o644))

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Build.Output)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "build after the input appeared did not happen")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}
