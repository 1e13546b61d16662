package engine

import (
	"encoding/json"
	"testing"

	"walletbook/internal/localstore"
	"walletbook/internal/models"
	"walletbook/internal/testutil"
)

func newTestEngine(t *testing.T) (*Engine, *localstore.Store, *models.User) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	t.Cleanup(func() { testutil.TeardownTestStore(t, store) })

	e := New(store)
	user := testutil.TestUser()
	e.SetUser(user)
	return e, store, user
}

// walletByCurrency finds a seeded wallet by its currency.
func walletByCurrency(t *testing.T, e *Engine, c models.CurrencyCode) models.Wallet {
	t.Helper()

	for _, w := range e.Wallets() {
		if w.Currency == c {
			return w
		}
	}
	t.Fatalf("no wallet with currency %s", c)
	return models.Wallet{}
}

func TestSetUser(t *testing.T) {
	t.Run("seeds_defaults_for_new_user", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		wallets := e.Wallets()
		if len(wallets) != 3 {
			t.Fatalf("expected 3 seeded wallets, got %d", len(wallets))
		}
		if e.CurrentWalletID() != wallets[0].ID {
			t.Errorf("expected first wallet to be current")
		}
		if wallets[0].Currency != models.CurrencyUSD {
			t.Errorf("expected USD wallet first, got %s", wallets[0].Currency)
		}

		categories := e.Categories()
		if len(categories) != 6 {
			t.Fatalf("expected 6 seeded categories, got %d", len(categories))
		}
		if got := len(e.CategoriesByType(models.TransactionTypeIncome)); got != 2 {
			t.Errorf("expected 2 income categories, got %d", got)
		}
		if got := len(e.CategoriesByType(models.TransactionTypeExpense)); got != 4 {
			t.Errorf("expected 4 expense categories, got %d", got)
		}

		// Illustrative seed transactions: 3000 income, 50 expense.
		if got := e.Balance(""); got != 2950 {
			t.Errorf("expected seeded balance 2950, got %v", got)
		}
	})

	t.Run("seed_transactions_reference_seed_categories", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		usd := walletByCurrency(t, e, models.CurrencyUSD)
		if len(usd.Transactions) != 2 {
			t.Fatalf("expected 2 seed transactions, got %d", len(usd.Transactions))
		}
		for _, tx := range usd.Transactions {
			if e.Category(tx.CategoryID) == nil {
				t.Errorf("seed transaction %s references unknown category %q", tx.ID, tx.CategoryID)
			}
		}
	})

	t.Run("loads_persisted_data_verbatim", func(t *testing.T) {
		e, store, user := newTestEngine(t)

		kzt := walletByCurrency(t, e, models.CurrencyKZT)
		e.SetCurrentWalletID(kzt.ID)
		_, err := e.AddTransaction(TransactionInput{
			Amount:     500,
			Type:       models.TransactionTypeIncome,
			CategoryID: e.Categories()[0].ID,
		})
		testutil.AssertNoError(t, err)

		fresh := New(store)
		fresh.SetUser(user)

		if fresh.CurrentWalletID() != kzt.ID {
			t.Errorf("expected current wallet pointer to persist")
		}
		if got := fresh.Balance(kzt.ID); got != 500 {
			t.Errorf("expected reloaded balance 500, got %v", got)
		}
	})

	t.Run("resets_on_nil_user", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		e.SetUser(nil)

		if e.UserID() != "" {
			t.Error("expected no user after reset")
		}
		if len(e.Wallets()) != 0 || len(e.Categories()) != 0 {
			t.Error("expected collections to be discarded")
		}
		if e.CurrentWalletID() != "" {
			t.Error("expected empty current wallet pointer")
		}
		if e.CurrentWallet() != nil {
			t.Error("expected no current wallet")
		}
	})

	t.Run("isolates_users", func(t *testing.T) {
		e, _, userA := newTestEngine(t)
		userB := testutil.TestUser()

		_, err := e.AddWallet(WalletInput{Name: "Savings", Currency: models.CurrencyUSD})
		testutil.AssertNoError(t, err)
		if len(e.Wallets()) != 4 {
			t.Fatalf("expected 4 wallets for user A, got %d", len(e.Wallets()))
		}

		e.SetUser(userB)
		if len(e.Wallets()) != 3 {
			t.Errorf("expected user B to get a fresh seed set, got %d wallets", len(e.Wallets()))
		}

		e.SetUser(userA)
		if len(e.Wallets()) != 4 {
			t.Errorf("expected user A's data restored, got %d wallets", len(e.Wallets()))
		}
	})

	t.Run("repairs_dangling_current_wallet_pointer", func(t *testing.T) {
		e, store, user := newTestEngine(t)

		if err := store.Set(localstore.CurrentWalletKey(user.ID), "wallet_bogus"); err != nil {
			t.Fatalf("failed to plant dangling pointer: %v", err)
		}

		fresh := New(store)
		fresh.SetUser(user)

		if fresh.CurrentWalletID() != e.Wallets()[0].ID {
			t.Errorf("expected pointer repaired to first wallet, got %s", fresh.CurrentWalletID())
		}
	})

	t.Run("corrupt_wallets_snapshot_falls_back_to_seeds", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		t.Cleanup(func() { testutil.TeardownTestStore(t, store) })
		user := testutil.TestUser()

		if err := store.Set(localstore.WalletsKey(user.ID), "{not json"); err != nil {
			t.Fatalf("failed to plant corrupt snapshot: %v", err)
		}

		e := New(store)
		e.SetUser(user)

		if len(e.Wallets()) != 3 {
			t.Errorf("expected seed wallets after corrupt snapshot, got %d", len(e.Wallets()))
		}
	})

	t.Run("empty_persisted_wallets_load_verbatim", func(t *testing.T) {
		store := testutil.SetupTestStore(t)
		t.Cleanup(func() { testutil.TeardownTestStore(t, store) })
		user := testutil.TestUser()

		if err := store.Set(localstore.WalletsKey(user.ID), "[]"); err != nil {
			t.Fatalf("failed to persist empty snapshot: %v", err)
		}

		e := New(store)
		e.SetUser(user)

		if len(e.Wallets()) != 0 {
			t.Errorf("expected no wallets, got %d", len(e.Wallets()))
		}
		if e.CurrentWalletID() != "" {
			t.Errorf("expected empty pointer with no wallets, got %s", e.CurrentWalletID())
		}
	})
}

func TestPersistence(t *testing.T) {
	t.Run("every_mutation_writes_a_full_snapshot", func(t *testing.T) {
		e, store, user := newTestEngine(t)

		tx, err := e.AddTransaction(TransactionInput{
			Amount:     100,
			Type:       models.TransactionTypeIncome,
			CategoryID: e.Categories()[0].ID,
		})
		testutil.AssertNoError(t, err)

		raw, ok, err := store.Get(localstore.WalletsKey(user.ID))
		testutil.AssertNoError(t, err)
		if !ok {
			t.Fatal("expected wallets snapshot to be persisted")
		}

		var wallets []models.Wallet
		if err := json.Unmarshal([]byte(raw), &wallets); err != nil {
			t.Fatalf("persisted snapshot is not valid JSON: %v", err)
		}
		if wallets[0].Transactions[0].ID != tx.ID {
			t.Error("persisted snapshot does not contain the new transaction")
		}
	})

	t.Run("snapshot_keys_are_namespaced_by_user", func(t *testing.T) {
		e, store, userA := newTestEngine(t)
		userB := testutil.TestUser()
		e.SetUser(userB)

		for _, user := range []*models.User{userA, userB} {
			if _, ok, _ := store.Get(localstore.WalletsKey(user.ID)); !ok {
				t.Errorf("expected wallets snapshot for %s", user.ID)
			}
			if _, ok, _ := store.Get(localstore.CategoriesKey(user.ID)); !ok {
				t.Errorf("expected categories snapshot for %s", user.ID)
			}
		}
	})
}

func TestSetCurrentWalletID(t *testing.T) {
	t.Run("unconditional_pointer_update", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		e.SetCurrentWalletID("wallet_missing")
		if e.CurrentWalletID() != "wallet_missing" {
			t.Error("expected pointer to be updated without validation")
		}
		if e.CurrentWallet() != nil {
			t.Error("dangling pointer must resolve to no current wallet")
		}
		if got := e.Balance(""); got != 0 {
			t.Errorf("balance with dangling pointer = %v, want 0", got)
		}
	})

	t.Run("current_wallet_resolves_on_demand", func(t *testing.T) {
		e, _, _ := newTestEngine(t)

		rub := walletByCurrency(t, e, models.CurrencyRUB)
		e.SetCurrentWalletID(rub.ID)

		current := e.CurrentWallet()
		if current == nil || current.ID != rub.ID {
			t.Fatal("expected current wallet to resolve")
		}
	})
}
