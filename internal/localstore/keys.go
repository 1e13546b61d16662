package localstore

// Storage key layout. Global keys hold the credential collection and the
// current session; per-user keys are namespaced by user id so data of
// different users never collides.
const (
	// KeyUsers holds the registered-credentials collection (JSON array).
	KeyUsers = "wallet_users"
	// KeySessionUser holds the current session's public user record (JSON).
	KeySessionUser = "wallet_user"
	// KeySessionToken holds the current session token.
	KeySessionToken = "wallet_token"
)

// WalletsKey returns the per-user key for the wallets snapshot.
func WalletsKey(userID string) string { return "wallet_wallets_" + userID }

// CurrentWalletKey returns the per-user key for the current wallet id.
func CurrentWalletKey(userID string) string { return "wallet_current_wallet_" + userID }

// CategoriesKey returns the per-user key for the categories snapshot.
func CategoriesKey(userID string) string { return "wallet_categories_" + userID }
