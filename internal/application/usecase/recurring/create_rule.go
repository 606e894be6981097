// Package recurring contains recurring transaction use cases, including the
// processor that materializes due occurrences.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

const (
	maxCategoryLength    = 50
	maxDescriptionLength = 500
)

// CreateRuleInput represents the input for recurring rule creation.
type CreateRuleInput struct {
	OwnerID     uuid.UUID
	AccountID   *uuid.UUID
	Type        entity.TransactionType
	Category    string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Frequency   entity.Frequency
	StartDate   time.Time
	EndDate     *time.Time
}

// CreateRuleUseCase handles recurring rule creation.
type CreateRuleUseCase struct {
	ruleRepo    adapter.RecurringRuleRepository
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	accountRepo adapter.AccountRepository,
	c *cache.Cache,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute creates the rule. Its first execution is one period after the
// start date.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*entity.RecurringRule, error) {
	if input.StartDate.IsZero() {
		return nil, domainerror.Validation(
			domainerror.ErrCodeMissingRecurringFields,
			"start_date is required",
			nil,
		)
	}
	if !input.Type.Valid() {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	currency, ok := entity.NormalizeCurrency(input.Currency)
	if !ok {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrency,
		)
	}
	end := datePtr(input.EndDate)
	if err := validateDates(entity.DateOf(input.StartDate), end); err != nil {
		return nil, err
	}
	if err := ensureAccountOwned(ctx, uc.accountRepo, input.AccountID, input.OwnerID); err != nil {
		return nil, err
	}

	rule := entity.NewRecurringRule(
		input.OwnerID,
		input.AccountID,
		input.Type,
		category,
		input.Amount,
		currency,
		input.Description,
		input.Frequency,
		input.StartDate,
		end,
	)
	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceRecurring, rule.UserID)
	return rule, nil
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
	if category == "" || len([]rune(category)) > maxCategoryLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category must be between 1 and %d characters", maxCategoryLength),
			domainerror.ErrInvalidCategory,
		)
	}
	return category, nil
}

func validateDescription(description string) error {
	if len([]rune(description)) > maxDescriptionLength {
		return domainerror.Validation(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateFrequency(frequency entity.Frequency) error {
	if !frequency.Valid() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be one of daily, weekly, monthly, yearly",
			domainerror.ErrInvalidFrequency,
		)
	}
	return nil
}

func validateDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidRecurringDates,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

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

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)
	return &d
}

func ruleNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeRecurringRuleNotFound, "Recurring transaction not found", err)
}
