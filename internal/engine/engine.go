// Package engine implements the wallet state engine: it owns the current
// user's wallets, transactions and categories, exposes the mutation and
// query operations the presentation layer drives, and persists a full
// snapshot into the user-namespaced local store after every mutation.
package engine

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"walletbook/internal/localstore"
	"walletbook/internal/logger"
	"walletbook/internal/models"
)

// Engine holds the loaded collections for exactly one authenticated user.
// State is replaced wholesale when the user changes and mutated in place
// otherwise. A single mutex makes the user-change swap atomic from the
// caller's perspective; the execution model remains single-writer.
type Engine struct {
	store *localstore.Store
	log   *zap.SugaredLogger

	mu              sync.RWMutex
	userID          string
	wallets         []models.Wallet
	currentWalletID string
	categories      []models.Category
}

// New creates an engine over the given store with no user loaded.
// Subscribe it to an identity context with OnChange(engine.SetUser).
func New(store *localstore.Store) *Engine {
	return &Engine{
		store: store,
		log:   logger.Named("engine"),
	}
}

// SetUser reloads the engine for the given user. With a nil user the
// in-memory collections are discarded; persisted data is left untouched
// and reloaded fresh on the next login. With a user, persisted snapshots
// are loaded verbatim when present and seeded otherwise.
func (e *Engine) SetUser(user *models.User) {
	if user == nil {
		e.mu.Lock()
		e.userID = ""
		e.wallets = nil
		e.currentWalletID = ""
		e.categories = nil
		e.mu.Unlock()
		return
	}

	categories, seededCategories := e.loadCategories(user.ID)
	wallets, seededWallets := e.loadWallets(user.ID, categories)
	currentID := e.resolveCurrentWalletID(user.ID, wallets)

	e.mu.Lock()
	e.userID = user.ID
	e.wallets = wallets
	e.categories = categories
	e.currentWalletID = currentID
	if seededWallets || seededCategories {
		e.persistLocked()
	}
	e.mu.Unlock()
}

// UserID returns the id of the user whose data is loaded, or "".
func (e *Engine) UserID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.userID
}

// Wallets returns the user's wallets.
func (e *Engine) Wallets() []models.Wallet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]models.Wallet, len(e.wallets))
	copy(out, e.wallets)
	return out
}

// Categories returns the user's categories.
func (e *Engine) Categories() []models.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]models.Category, len(e.categories))
	copy(out, e.categories)
	return out
}

// CategoriesByType returns the user's categories of the given type, in
// collection order.
func (e *Engine) CategoriesByType(t models.TransactionType) []models.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []models.Category
	for _, cat := range e.categories {
		if cat.Type == t {
			out = append(out, cat)
		}
	}
	return out
}

// CurrentWalletID returns the current wallet pointer, possibly "".
func (e *Engine) CurrentWalletID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentWalletID
}

// SetCurrentWalletID updates the current wallet pointer unconditionally.
// The id is not checked against the wallet set; queries treat a dangling
// pointer as "no current wallet".
func (e *Engine) SetCurrentWalletID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.userID == "" {
		return
	}
	e.currentWalletID = id
	e.persistLocked()
}

// CurrentWallet resolves the current wallet from (wallets, currentWalletID).
// It returns nil when the pointer is empty or does not resolve.
func (e *Engine) CurrentWallet() *models.Wallet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.walletByIDLocked(e.currentWalletID)
}

// walletByIDLocked returns a copy of the wallet with the given id, or nil.
// An empty id resolves to the current wallet.
func (e *Engine) walletByIDLocked(id string) *models.Wallet {
	if id == "" {
		id = e.currentWalletID
	}
	for i := range e.wallets {
		if e.wallets[i].ID == id {
			w := e.wallets[i]
			return &w
		}
	}
	return nil
}

// loadWallets returns the persisted wallets snapshot, or the seed set when
// none exists. A corrupt snapshot is treated as absent. The second return
// reports whether seeding happened.
func (e *Engine) loadWallets(userID string, categories []models.Category) ([]models.Wallet, bool) {
	raw, ok, err := e.store.Get(localstore.WalletsKey(userID))
	if err != nil {
		e.log.Warnw("failed to read wallets snapshot, seeding defaults", "user_id", userID, "error", err)
		return seedWallets(categories), true
	}
	if !ok {
		return seedWallets(categories), true
	}

	var wallets []models.Wallet
	if err := json.Unmarshal([]byte(raw), &wallets); err != nil {
		e.log.Warnw("corrupt wallets snapshot, seeding defaults", "user_id", userID, "error", err)
		return seedWallets(categories), true
	}
	return wallets, false
}

// loadCategories mirrors loadWallets for the category collection.
func (e *Engine) loadCategories(userID string) ([]models.Category, bool) {
	raw, ok, err := e.store.Get(localstore.CategoriesKey(userID))
	if err != nil {
		e.log.Warnw("failed to read categories snapshot, seeding defaults", "user_id", userID, "error", err)
		return seedCategories(), true
	}
	if !ok {
		return seedCategories(), true
	}

	var categories []models.Category
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		e.log.Warnw("corrupt categories snapshot, seeding defaults", "user_id", userID, "error", err)
		return seedCategories(), true
	}
	return categories, false
}

// resolveCurrentWalletID repairs the persisted current wallet pointer:
// a pointer that does not reference a loaded wallet falls back to the
// first wallet, or to "" when there are none.
func (e *Engine) resolveCurrentWalletID(userID string, wallets []models.Wallet) string {
	if len(wallets) == 0 {
		return ""
	}

	stored, ok, err := e.store.Get(localstore.CurrentWalletKey(userID))
	if err != nil {
		e.log.Warnw("failed to read current wallet pointer", "user_id", userID, "error", err)
	}
	if ok {
		for _, w := range wallets {
			if w.ID == stored {
				return stored
			}
		}
	}
	return wallets[0].ID
}

// persistLocked re-serializes the wallets collection, the categories
// collection and the current wallet pointer into the user-namespaced
// store. Always a full snapshot write; write failures are logged and the
// in-memory mutation stands (last write wins).
func (e *Engine) persistLocked() {
	if e.userID == "" {
		return
	}

	walletsJSON, err := json.Marshal(e.wallets)
	if err != nil {
		e.log.Errorw("failed to serialize wallets snapshot", "user_id", e.userID, "error", err)
		return
	}
	categoriesJSON, err := json.Marshal(e.categories)
	if err != nil {
		e.log.Errorw("failed to serialize categories snapshot", "user_id", e.userID, "error", err)
		return
	}

	if err := e.store.Set(localstore.WalletsKey(e.userID), string(walletsJSON)); err != nil {
		e.log.Warnw("failed to persist wallets snapshot", "user_id", e.userID, "error", err)
	}
	if err := e.store.Set(localstore.CurrentWalletKey(e.userID), e.currentWalletID); err != nil {
		e.log.Warnw("failed to persist current wallet pointer", "user_id", e.userID, "error", err)
	}
	if err := e.store.Set(localstore.CategoriesKey(e.userID), string(categoriesJSON)); err != nil {
		e.log.Warnw("failed to persist categories snapshot", "user_id", e.userID, "error", err)
	}
}
