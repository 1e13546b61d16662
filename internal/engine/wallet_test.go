package engine

import (
	"testing"

	"walletbook/internal/localstore"
	"walletbook/internal/models"
	"walletbook/internal/testutil"
)

func TestAddWallet(t *testing.T) {
	t.Run("appends_with_empty_transaction_list", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		w, err := e.AddWallet(WalletInput{Name: "Savings", Currency: models.CurrencyUSD})
		testutil.AssertNoError(t, err)

		if w.Transactions == nil || len(w.Transactions) != 0 {
			t.Error("expected an empty transaction list")
		}
		wallets := e.Wallets()
		if wallets[len(wallets)-1].ID != w.ID {
			t.Error("expected new wallet appended at the end")
		}
	})

	t.Run("first_wallet_becomes_current", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		t.Cleanup(func() { testutil.TeardownTestStore(t, store) })
		user := testutil.TestUser()

		// Persisted empty collections: the user has deleted or never had
		// wallets, so no seeding happens on load.
		if err := store.Set(localstore.WalletsKey(user.ID), "[]"); err != nil {
			t.Fatal(err)
		}

		e := New(store)
		e.SetUser(user)
		if e.CurrentWalletID() != "" {
			t.Fatal("precondition: no current wallet")
		}

		w, err := e.AddWallet(WalletInput{Name: "First", Currency: models.CurrencyKZT})
		testutil.AssertNoError(t, err)
		if e.CurrentWalletID() != w.ID {
			t.Error("expected first wallet to become current")
		}

		second, err := e.AddWallet(WalletInput{Name: "Second", Currency: models.CurrencyRUB})
		testutil.AssertNoError(t, err)
		if e.CurrentWalletID() == second.ID {
			t.Error("second wallet must not steal the current pointer")
		}
	})

	t.Run("unknown_currency_rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		_, err := e.AddWallet(WalletInput{Name: "Euros", Currency: "EUR"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_name_rejected", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		_, err := e.AddWallet(WalletInput{Currency: models.CurrencyUSD})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestBalance(t *testing.T) {
	t.Run("unknown_wallet_yields_zero", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		if got := e.Balance("wallet_missing"); got != 0 {
			t.Errorf("Balance(unknown) = %v, want 0", got)
		}
	})

	t.Run("named_wallet_overrides_current", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		usd := walletByCurrency(t, e, models.CurrencyUSD)
		kzt := walletByCurrency(t, e, models.CurrencyKZT)
		e.SetCurrentWalletID(kzt.ID)

		if got := e.Balance(usd.ID); got != 2950 {
			t.Errorf("Balance(usd) = %v, want 2950", got)
		}
		if got := e.Balance(""); got != 0 {
			t.Errorf("Balance(current empty wallet) = %v, want 0", got)
		}
	})
}

func TestTotals(t *testing.T) {
	t.Run("sums_income_and_expense_separately", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		income, expense := e.Totals("")
		if income != 3000 {
			t.Errorf("income = %v, want 3000", income)
		}
		if expense != 50 {
			t.Errorf("expense = %v, want 50", expense)
		}
	})

	t.Run("unknown_wallet_yields_zeros", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		income, expense := e.Totals("wallet_missing")
		if income != 0 || expense != 0 {
			t.Errorf("Totals(unknown) = %v, %v, want 0, 0", income, expense)
		}
	})
}
