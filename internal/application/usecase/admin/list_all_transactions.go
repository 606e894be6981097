// Package admin contains cross-owner administration use cases.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// ListAllTransactionsInput represents the input for the cross-owner listing.
type ListAllTransactionsInput struct {
	UserID   *uuid.UUID
	Type     *entity.TransactionType
	Category string
	Page     int
	Limit    int
}

// ListAllTransactionsUseCase lists every owner's transactions with owner details.
type ListAllTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListAllTransactionsUseCase creates a new ListAllTransactionsUseCase instance.
func NewListAllTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListAllTransactionsUseCase {
	return &ListAllTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute returns one page, newest first.
func (uc *ListAllTransactionsUseCase) Execute(ctx context.Context, input ListAllTransactionsInput) (*adapter.OwnedTransactionListResult, error) {
	if input.Type != nil && !input.Type.Valid() {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	filter := adapter.TransactionFilter{
		Owner:    input.UserID,
		Type:     input.Type,
		Category: input.Category,
	}
	result, err := uc.transactionRepo.ListWithOwners(ctx, filter, transaction.NormalizePagination(input.Page, input.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return result, nil
}
