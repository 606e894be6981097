// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// AccountOutput is an account with its transaction-derived balance.
type AccountOutput struct {
	Account           *entity.Account
	CalculatedBalance decimal.Decimal
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []AccountOutput
}

// ListAccountsUseCase lists one owner's accounts through the cache.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository, c *cache.Cache) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute returns the owner's accounts.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, owner uuid.UUID) (*ListAccountsOutput, error) {
	return cache.ReadThrough(ctx, uc.cache, cache.AccountsKey(owner), uc.cache.ListTTL(),
		func(ctx context.Context) (*ListAccountsOutput, error) {
			rows, err := uc.accountRepo.ListWithBalances(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("failed to list accounts: %w", err)
			}
			output := &ListAccountsOutput{Accounts: make([]AccountOutput, 0, len(rows))}
			for _, row := range rows {
				output.Accounts = append(output.Accounts, AccountOutput{
					Account:           row.Account,
					CalculatedBalance: row.CalculatedBalance,
				})
			}
			return output, nil
		})
}
