package models

// Category is a user-defined label partitioning transactions for reporting.
// Color and Icon are opaque display tokens passed through to the
// presentation layer.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Icon  string          `json:"icon"`
	Type  TransactionType `json:"type"`
}
