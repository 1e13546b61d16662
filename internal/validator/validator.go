// Package validator wraps go-playground/validator with walletbook's custom
// rules and maps violations onto the application error taxonomy.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "walletbook/internal/errors"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var (
	validate *validator.Validate
	once     sync.Once
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("currency_code", validateCurrencyCode)
		_ = validate.RegisterValidation("transaction_type", validateTransactionType)
		_ = validate.RegisterValidation("category_type", validateTransactionType)
		_ = validate.RegisterValidation("hex_color", validateHexColor)
	})
	return validate
}

// Struct validates v's `validate` tags. Violations come back as
// INVALID_INPUT application errors naming the offending field.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		msg := fmt.Sprintf("invalid value for %s (rule %s)", strings.ToLower(first.Field()), first.Tag())
		return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "USD", "KZT", "RUB":
		return true
	}
	return false
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}
