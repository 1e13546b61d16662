package engine

import (
	"walletbook/internal/ident"
	"walletbook/internal/models"
	"walletbook/internal/validator"
)

// WalletInput carries the fields for a new wallet.
type WalletInput struct {
	Name     string              `validate:"required"`
	Currency models.CurrencyCode `validate:"required,currency_code"`
}

// AddWallet assigns a fresh id and an empty transaction list and appends
// the wallet to the collection. The user's first wallet becomes the
// current wallet automatically.
func (e *Engine) AddWallet(in WalletInput) (*models.Wallet, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.userID == "" {
		return nil, nil
	}

	w := models.Wallet{
		ID:           ident.New(ident.PrefixWallet),
		Name:         in.Name,
		Currency:     in.Currency,
		Transactions: []models.Transaction{},
	}

	first := len(e.wallets) == 0
	e.wallets = append(e.wallets, w)
	if first {
		e.currentWalletID = w.ID
	}

	e.persistLocked()
	return &w, nil
}

// Balance returns the wallet's balance, recomputed from its full
// transaction list on every call. An empty walletID targets the current
// wallet; an unknown or missing wallet yields 0.
func (e *Engine) Balance(walletID string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	w := e.walletByIDLocked(walletID)
	if w == nil {
		return 0
	}
	return w.Balance()
}

// Totals returns the wallet's income and expense sums over its full
// transaction list. Same wallet resolution rules as Balance.
func (e *Engine) Totals(walletID string) (income, expense float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	w := e.walletByIDLocked(walletID)
	if w == nil {
		return 0, 0
	}
	for _, tx := range w.Transactions {
		if tx.Type == models.TransactionTypeIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}
	return income, expense
}
