package models

// Wallet is a named container of transactions denominated in one fixed
// currency. Transactions are kept newest first; that is a storage and
// display convention, not a sort by date.
type Wallet struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     CurrencyCode  `json:"currency"`
	Transactions []Transaction `json:"transactions"`
}

// Balance recomputes the wallet balance from the full transaction list:
// income amounts minus expense amounts. It is intentionally never cached,
// so it is always correct after edits and deletes.
func (w Wallet) Balance() float64 {
	var total float64
	for _, tx := range w.Transactions {
		total += tx.Signed()
	}
	return total
}

// FindTransaction returns the index of the transaction with the given id,
// or -1 if absent.
func (w Wallet) FindTransaction(id string) int {
	for i := range w.Transactions {
		if w.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}
