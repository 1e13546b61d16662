package testutil

import (
	"fmt"
	"sync/atomic"

	"walletbook/internal/ident"
	"walletbook/internal/models"
)

var userSeq atomic.Int64

// TestUser returns a distinct user record for use as an engine owner.
func TestUser() *models.User {
	n := userSeq.Add(1)
	return &models.User{
		ID:    ident.New(ident.PrefixUser),
		Email: fmt.Sprintf("user%d@example.com", n),
		Name:  fmt.Sprintf("Test User %d", n),
	}
}
