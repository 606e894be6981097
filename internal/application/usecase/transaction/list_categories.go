package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// ListCategoriesUseCase returns the categories an owner has used.
type ListCategoriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(transactionRepo adapter.TransactionRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{transactionRepo: transactionRepo}
}

// Execute returns the distinct categories, sorted.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, owner uuid.UUID) ([]string, error) {
	categories, err := uc.transactionRepo.Categories(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
