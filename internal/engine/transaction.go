package engine

import (
	"time"

	"walletbook/internal/ident"
	"walletbook/internal/models"
	"walletbook/internal/validator"
)

// TransactionInput carries the fields for a new transaction. Amount is a
// non-negative magnitude; its sign comes from Type.
type TransactionInput struct {
	Amount     float64                `validate:"gte=0"`
	Type       models.TransactionType `validate:"required,transaction_type"`
	CategoryID string                 `validate:"required"`
	Date       string
	Comment    string
}

// TransactionUpdate carries a partial update; nil fields are left
// untouched.
type TransactionUpdate struct {
	Amount     *float64                `validate:"omitempty,gte=0"`
	Type       *models.TransactionType `validate:"omitempty,transaction_type"`
	CategoryID *string
	Date       *string
	Comment    *string
}

// AddTransaction assigns a fresh id and prepends the transaction to the
// current wallet's list (newest-first convention). Without a current
// wallet it is a silent no-op returning (nil, nil). An empty date
// defaults to now.
func (e *Engine) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	if in.Date == "" {
		in.Date = time.Now().Format(time.RFC3339)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.currentWalletIndexLocked()
	if i < 0 {
		return nil, nil
	}

	tx := models.Transaction{
		ID:         ident.New(ident.PrefixTransaction),
		Amount:     in.Amount,
		Type:       in.Type,
		CategoryID: in.CategoryID,
		Date:       in.Date,
		Comment:    in.Comment,
	}

	w := &e.wallets[i]
	list := make([]models.Transaction, 0, len(w.Transactions)+1)
	list = append(list, tx)
	list = append(list, w.Transactions...)
	w.Transactions = list

	e.persistLocked()
	return &tx, nil
}

// UpdateTransaction merges the provided fields into the transaction with
// the given id within the current wallet only. No current wallet or no
// matching id is a silent no-op returning (nil, nil).
func (e *Engine) UpdateTransaction(id string, upd TransactionUpdate) (*models.Transaction, error) {
	if err := validator.Struct(upd); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.currentWalletIndexLocked()
	if i < 0 {
		return nil, nil
	}

	w := &e.wallets[i]
	j := w.FindTransaction(id)
	if j < 0 {
		return nil, nil
	}

	tx := &w.Transactions[j]
	if upd.Amount != nil {
		tx.Amount = *upd.Amount
	}
	if upd.Type != nil {
		tx.Type = *upd.Type
	}
	if upd.CategoryID != nil {
		tx.CategoryID = *upd.CategoryID
	}
	if upd.Date != nil {
		tx.Date = *upd.Date
	}
	if upd.Comment != nil {
		tx.Comment = *upd.Comment
	}

	e.persistLocked()
	out := *tx
	return &out, nil
}

// DeleteTransaction removes the transaction with the given id from the
// current wallet's list. An absent id or no current wallet is a silent
// no-op.
func (e *Engine) DeleteTransaction(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.currentWalletIndexLocked()
	if i < 0 {
		return
	}

	w := &e.wallets[i]
	j := w.FindTransaction(id)
	if j < 0 {
		return
	}

	// Full slice expression so snapshots handed out earlier keep their
	// backing array intact.
	w.Transactions = append(w.Transactions[:j:j], w.Transactions[j+1:]...)
	e.persistLocked()
}

// currentWalletIndexLocked returns the index of the current wallet, or -1
// when the pointer is empty or dangling.
func (e *Engine) currentWalletIndexLocked() int {
	if e.currentWalletID == "" {
		return -1
	}
	for i := range e.wallets {
		if e.wallets[i].ID == e.currentWalletID {
			return i
		}
	}
	return -1
}
