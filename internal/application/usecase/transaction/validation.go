// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for categories.
	MaxCategoryLength = 50
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 500
)

func validateType(t entity.TransactionType) error {
	if !t.Valid() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func normalizeCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" || len([]rune(category)) > MaxCategoryLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category must be between 1 and %d characters", MaxCategoryLength),
			domainerror.ErrInvalidCategory,
		)
	}
	return category, nil
}

func validateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.Validation(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func normalizeCurrency(code string) (string, error) {
	currency, ok := entity.NormalizeCurrency(code)
	if !ok {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrency,
		)
	}
	return currency, nil
}

// ensureAccountOwned checks that accountID belongs to owner.
func ensureAccountOwned(ctx context.Context, repo adapter.AccountRepository, accountID *uuid.UUID, owner uuid.UUID) error {
	if accountID == nil {
		return nil
	}
	if _, err := repo.FindByID(ctx, *accountID, &owner); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NotFound(domainerror.ErrCodeAccountNotFound, "Account not found", err)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	return nil
}

func transactionNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeTransactionNotFound, "Transaction not found", err)
}
