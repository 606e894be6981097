package budget

import (
	"context"
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

// MaxCategoryLength is the maximum allowed length for budget categories.
const MaxCategoryLength = 50

// CreateBudgetInput represents the input for budget creation. A nil
// StartDate starts the budget today.
type CreateBudgetInput struct {
	OwnerID   uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Period    entity.BudgetPeriod
	Currency  string
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      *cache.Cache
	clock      adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, c *cache.Cache, clock adapter.Clock) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      c,
		clock:      clock,
	}
}

// Execute creates the budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*entity.Budget, error) {
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.Period); err != nil {
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

	start := uc.clock.Now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := datePtr(input.EndDate)
	if err := validateDates(entity.DateOf(start), end); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.OwnerID, category, input.Amount, input.Period, currency, start, end)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceBudgets, budget.UserID)
	return budget, nil
}

func normalizeCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" || len([]rune(category)) > MaxCategoryLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidBudgetCategory,
			fmt.Sprintf("category must be between 1 and %d characters", MaxCategoryLength),
			domainerror.ErrInvalidCategory,
		)
	}
	return category, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !period.Valid() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func validateDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidBudgetDates,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
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

func budgetNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeBudgetNotFound, "Budget not found", err)
}
