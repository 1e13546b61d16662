// Package integration exercises full user flows through the composed App,
// backed by a real SQLite store on disk.
package integration

import (
	"path/filepath"
	"testing"
	"time"

	"walletbook"
	"walletbook/internal/config"
)

// testConfig returns a config pointing at a store file under dir.
func testConfig(dir string) *config.Config {
	return &config.Config{
		Env:           "development",
		StorePath:     filepath.Join(dir, "walletbook.db"),
		SessionSecret: "integration-test-secret",
		SessionTTL:    time.Hour,
	}
}

// newTestApp opens an App over a fresh store file.
func newTestApp(t *testing.T) *walletbook.App {
	t.Helper()

	app, err := walletbook.New(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("failed to open app: %v", err)
	}
	t.Cleanup(func() {
		if err := app.Close(); err != nil {
			t.Errorf("failed to close app: %v", err)
		}
	})
	return app
}

// reopen closes the app and opens a new one over the same store file,
// simulating a process restart.
func reopen(t *testing.T, cfg *config.Config, app *walletbook.App) *walletbook.App {
	t.Helper()

	if err := app.Close(); err != nil {
		t.Fatalf("failed to close app: %v", err)
	}
	fresh, err := walletbook.New(cfg)
	if err != nil {
		t.Fatalf("failed to reopen app: %v", err)
	}
	t.Cleanup(func() { _ = fresh.Close() })
	return fresh
}
