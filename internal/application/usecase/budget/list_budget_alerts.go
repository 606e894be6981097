package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// ListBudgetAlertsUseCase returns active budgets whose usage exceeds
// entity.BudgetAlertThreshold.
type ListBudgetAlertsUseCase struct {
	list *ListBudgetsUseCase
}

// NewListBudgetAlertsUseCase creates a new ListBudgetAlertsUseCase instance.
func NewListBudgetAlertsUseCase(list *ListBudgetsUseCase) *ListBudgetAlertsUseCase {
	return &ListBudgetAlertsUseCase{list: list}
}

// Execute filters the cached budget listing.
func (uc *ListBudgetAlertsUseCase) Execute(ctx context.Context, owner uuid.UUID) ([]BudgetOutput, error) {
	listing, err := uc.list.Execute(ctx, owner)
	if err != nil {
		return nil, err
	}

	alerts := make([]BudgetOutput, 0)
	for _, b := range listing.Budgets {
		if b.Budget.IsActive && b.UsagePercentage.GreaterThan(entity.BudgetAlertThreshold) {
			alerts = append(alerts, b)
		}
	}
	return alerts, nil
}
