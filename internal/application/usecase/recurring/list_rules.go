package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// ListRulesUseCase lists an owner's recurring rules.
type ListRulesUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.RecurringRuleRepository) *ListRulesUseCase {
	return &ListRulesUseCase{ruleRepo: ruleRepo}
}

// Execute returns the owner's rules ordered by next execution.
func (uc *ListRulesUseCase) Execute(ctx context.Context, owner uuid.UUID) ([]*entity.RecurringRule, error) {
	rules, err := uc.ruleRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return rules, nil
}
