package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// UpdateRuleInput represents the input for recurring rule updates. Nil
// fields are left unchanged.
type UpdateRuleInput struct {
	ID          uuid.UUID
	Owner       *uuid.UUID
	AccountID   *uuid.UUID
	Type        *entity.TransactionType
	Category    *string
	Amount      *decimal.Decimal
	Description *string
	Frequency   *entity.Frequency
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
}

// UpdateRuleUseCase handles recurring rule updates.
type UpdateRuleUseCase struct {
	ruleRepo    adapter.RecurringRuleRepository
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	accountRepo adapter.AccountRepository,
	c *cache.Cache,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute applies the update. Changing the start date or the frequency
// recomputes the next execution.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*entity.RecurringRule, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.ID, input.Owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return nil, ruleNotFound(err)
		}
		return nil, fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	reschedule := false
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, domainerror.Validation(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		rule.Type = *input.Type
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		rule.Amount = *input.Amount
	}
	if input.Category != nil {
		if rule.Category, err = normalizeCategory(*input.Category); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		rule.Description = *input.Description
	}
	if input.Frequency != nil && *input.Frequency != rule.Frequency {
		if err := validateFrequency(*input.Frequency); err != nil {
			return nil, err
		}
		rule.Frequency = *input.Frequency
		reschedule = true
	}
	if input.StartDate != nil {
		start := entity.DateOf(*input.StartDate)
		if !start.Equal(rule.StartDate) {
			rule.StartDate = start
			reschedule = true
		}
	}
	if input.EndDate != nil {
		rule.EndDate = datePtr(input.EndDate)
	}
	if err := validateDates(rule.StartDate, rule.EndDate); err != nil {
		return nil, err
	}
	if input.AccountID != nil {
		if err := ensureAccountOwned(ctx, uc.accountRepo, input.AccountID, rule.UserID); err != nil {
			return nil, err
		}
		rule.AccountID = input.AccountID
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if reschedule {
		rule.Reschedule()
	}
	rule.UpdatedAt = time.Now().UTC()

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceRecurring, rule.UserID)
	return rule, nil
}
