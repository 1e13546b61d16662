package engine

import (
	apperrors "walletbook/internal/errors"
	"walletbook/internal/ident"
	"walletbook/internal/models"
	"walletbook/internal/validator"
)

// CategoryInput carries the fields for a new category. Name uniqueness is
// deliberately not enforced.
type CategoryInput struct {
	Name  string                 `validate:"required"`
	Color string                 `validate:"omitempty,hex_color"`
	Icon  string
	Type  models.TransactionType `validate:"required,category_type"`
}

// AddCategory assigns a fresh id and appends the category to the
// collection.
func (e *Engine) AddCategory(in CategoryInput) (*models.Category, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.userID == "" {
		return nil, nil
	}

	cat := models.Category{
		ID:    ident.New(ident.PrefixCategory),
		Name:  in.Name,
		Color: in.Color,
		Icon:  in.Icon,
		Type:  in.Type,
	}
	e.categories = append(e.categories, cat)
	e.persistLocked()
	return &cat, nil
}

// DeleteCategory removes the category unless any transaction in any of the
// user's wallets still references it, in which case it fails with
// CATEGORY_IN_USE and the category is left untouched. Orphaned-transaction
// avoidance is preferred over cascading deletes. Deleting an unknown id is
// a no-op.
func (e *Engine) DeleteCategory(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, w := range e.wallets {
		for _, tx := range w.Transactions {
			if tx.CategoryID == id {
				return apperrors.ErrCategoryInUse
			}
		}
	}

	for i := range e.categories {
		if e.categories[i].ID == id {
			e.categories = append(e.categories[:i:i], e.categories[i+1:]...)
			e.persistLocked()
			return nil
		}
	}
	return nil
}

// Category returns the category with the given id, or nil. Lookups are
// total; an unknown id is not an error.
func (e *Engine) Category(id string) *models.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := range e.categories {
		if e.categories[i].ID == id {
			cat := e.categories[i]
			return &cat
		}
	}
	return nil
}
