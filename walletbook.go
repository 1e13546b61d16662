// Package walletbook composes the identity context and the wallet engine
// over a shared durable local store. The presentation layer constructs one
// App per process, reads engine state through its queries, and invokes the
// mutators in response to user actions.
package walletbook

import (
	"walletbook/internal/config"
	"walletbook/internal/engine"
	"walletbook/internal/identity"
	"walletbook/internal/localstore"
	"walletbook/internal/logger"
)

// App is the composition root. Identity owns the session; Wallets owns the
// current user's collections and follows every session change.
type App struct {
	Identity *identity.Context
	Wallets  *engine.Engine

	store *localstore.Store
}

// New builds an App over the configured store, wires the engine to session
// changes, and restores any persisted session so the engine starts with
// that user's data loaded.
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.Env)

	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	id := identity.NewContext(store, cfg)
	eng := engine.New(store)
	id.OnChange(eng.SetUser)
	id.Restore()

	return &App{
		Identity: id,
		Wallets:  eng,
		store:    store,
	}, nil
}

// Open builds an App from environment configuration.
func Open() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Close flushes the logger and closes the local store.
func (a *App) Close() error {
	logger.Sync()
	return a.store.Close()
}
