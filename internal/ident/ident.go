// Package ident generates the unique identifiers used for all walletbook
// entities. Ids are time-ordered UUIDv7 strings carrying an entity prefix,
// e.g. "tx_0190f7a2-...". Uniqueness is a correctness invariant: ids are
// assigned exactly once and never reused.
package ident

import (
	"github.com/google/uuid"
)

// Entity prefixes, preserved from the persisted snapshot format.
const (
	PrefixUser        = "user"
	PrefixWallet      = "wallet"
	PrefixTransaction = "tx"
	PrefixCategory    = "cat"
)

// New returns a fresh unique id with the given entity prefix.
func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// crypto/rand exhaustion only; a v4 id is still unique.
		id = uuid.New()
	}
	return prefix + "_" + id.String()
}
