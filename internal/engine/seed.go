package engine

import (
	"time"

	"walletbook/internal/ident"
	"walletbook/internal/models"
)

// seedCategories builds the default category set materialized for a user
// with no persisted data: six categories spanning both transaction types.
func seedCategories() []models.Category {
	return []models.Category{
		{ID: ident.New(ident.PrefixCategory), Name: "Salary", Color: "#4CAF50", Icon: "wallet", Type: models.TransactionTypeIncome},
		{ID: ident.New(ident.PrefixCategory), Name: "Gifts", Color: "#9C27B0", Icon: "gift", Type: models.TransactionTypeIncome},
		{ID: ident.New(ident.PrefixCategory), Name: "Food", Color: "#FF9800", Icon: "utensils", Type: models.TransactionTypeExpense},
		{ID: ident.New(ident.PrefixCategory), Name: "Transport", Color: "#2196F3", Icon: "car", Type: models.TransactionTypeExpense},
		{ID: ident.New(ident.PrefixCategory), Name: "Entertainment", Color: "#E91E63", Icon: "film", Type: models.TransactionTypeExpense},
		{ID: ident.New(ident.PrefixCategory), Name: "Shopping", Color: "#795548", Icon: "shopping-bag", Type: models.TransactionTypeExpense},
	}
}

func categoryIDByName(categories []models.Category, name string) string {
	for _, cat := range categories {
		if cat.Name == name {
			return cat.ID
		}
	}
	return ""
}

// seedWallets builds the default wallet set: one wallet per supported
// currency, the USD wallet pre-populated with two illustrative
// transactions tagged with the Salary and Food categories from the
// category collection. A missing category leaves the reference empty;
// lookups tolerate that.
func seedWallets(categories []models.Category) []models.Wallet {
	now := time.Now()
	return []models.Wallet{
		{
			ID:       ident.New(ident.PrefixWallet),
			Name:     "USD Wallet",
			Currency: models.CurrencyUSD,
			Transactions: []models.Transaction{
				{
					ID:         ident.New(ident.PrefixTransaction),
					Amount:     3000,
					Type:       models.TransactionTypeIncome,
					CategoryID: categoryIDByName(categories, "Salary"),
					Date:       now.AddDate(0, 0, -7).Format(time.RFC3339),
					Comment:    "Monthly salary",
				},
				{
					ID:         ident.New(ident.PrefixTransaction),
					Amount:     50,
					Type:       models.TransactionTypeExpense,
					CategoryID: categoryIDByName(categories, "Food"),
					Date:       now.AddDate(0, 0, -3).Format(time.RFC3339),
					Comment:    "Groceries",
				},
			},
		},
		{
			ID:           ident.New(ident.PrefixWallet),
			Name:         "KZT Wallet",
			Currency:     models.CurrencyKZT,
			Transactions: []models.Transaction{},
		},
		{
			ID:           ident.New(ident.PrefixWallet),
			Name:         "RUB Wallet",
			Currency:     models.CurrencyRUB,
			Transactions: []models.Transaction{},
		},
	}
}
