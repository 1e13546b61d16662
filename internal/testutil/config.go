package testutil

import (
	"time"

	"walletbook/internal/config"
)

// TestConfig returns a configuration suitable for tests.
func TestConfig() *config.Config {
	return &config.Config{
		Env:           "development",
		StorePath:     ":memory:",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
	}
}
