package models

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single dated money movement inside a wallet. Amount is a
// non-negative magnitude; the sign of its contribution to the balance comes
// from Type. Date is stored as a string exactly as persisted (RFC 3339 or
// plain YYYY-MM-DD); date-range queries parse it on demand.
type Transaction struct {
	ID         string          `json:"id"`
	Amount     float64         `json:"amount"`
	Type       TransactionType `json:"type"`
	CategoryID string          `json:"categoryId"`
	Date       string          `json:"date"`
	Comment    string          `json:"comment,omitempty"`
}

// Signed returns the transaction's contribution to a balance: positive for
// income, negative for expense.
func (t Transaction) Signed() float64 {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return -t.Amount
}
