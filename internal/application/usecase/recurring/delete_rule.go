package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// DeleteRuleUseCase handles recurring rule deletion. Transactions already
// materialized by the rule are kept.
type DeleteRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	cache    *cache.Cache
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.RecurringRuleRepository, c *cache.Cache) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		cache:    c,
	}
}

// Execute deletes a rule visible to the caller.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, id uuid.UUID, owner *uuid.UUID) error {
	rule, err := uc.ruleRepo.FindByID(ctx, id, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return ruleNotFound(err)
		}
		return fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	if err := uc.ruleRepo.Delete(ctx, rule.ID); err != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceRecurring, rule.UserID)
	return nil
}
