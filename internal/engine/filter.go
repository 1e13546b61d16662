package engine

import (
	"time"

	"walletbook/internal/models"
)

const dateOnly = "2006-01-02"

// parseDate accepts the two formats the snapshot carries: RFC 3339
// timestamps and plain calendar dates.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FilterTransactionsByDate returns the transactions of the named wallet
// (current wallet when walletID is empty) whose date satisfies
// start <= date <= end, inclusive at both ends. An unparseable bound
// yields an empty result, and a transaction with an unparseable date is
// excluded from every range. An unknown wallet yields an empty result.
func (e *Engine) FilterTransactionsByDate(start, end, walletID string) []models.Transaction {
	from, ok := parseDate(start)
	if !ok {
		return nil
	}
	to, ok := parseDate(end)
	if !ok {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	w := e.walletByIDLocked(walletID)
	if w == nil {
		return nil
	}

	var out []models.Transaction
	for _, tx := range w.Transactions {
		d, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
