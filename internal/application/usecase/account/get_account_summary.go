package account

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// CurrencyTotal is the total balance and account count for one currency.
type CurrencyTotal struct {
	Currency     string
	TotalBalance decimal.Decimal
	AccountCount int64
}

// TypeTotal is the total balance and account count for one account type.
type TypeTotal struct {
	Type         entity.AccountType
	TotalBalance decimal.Decimal
	AccountCount int64
}

// AccountSummaryOutput represents active account totals.
type AccountSummaryOutput struct {
	ByCurrency []CurrencyTotal
	ByType     []TypeTotal
}

// GetAccountSummaryUseCase totals an owner's active accounts.
type GetAccountSummaryUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountSummaryUseCase creates a new GetAccountSummaryUseCase instance.
func NewGetAccountSummaryUseCase(accountRepo adapter.AccountRepository) *GetAccountSummaryUseCase {
	return &GetAccountSummaryUseCase{accountRepo: accountRepo}
}

// Execute groups active account balances by currency and by type.
func (uc *GetAccountSummaryUseCase) Execute(ctx context.Context, owner uuid.UUID) (*AccountSummaryOutput, error) {
	totals, err := uc.accountRepo.Summary(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize accounts: %w", err)
	}

	byCurrency := map[string]*CurrencyTotal{}
	byType := map[entity.AccountType]*TypeTotal{}
	for _, total := range totals {
		c, ok := byCurrency[total.Currency]
		if !ok {
			c = &CurrencyTotal{Currency: total.Currency}
			byCurrency[total.Currency] = c
		}
		c.TotalBalance = c.TotalBalance.Add(total.Balance)
		c.AccountCount += total.AccountCount

		t, ok := byType[total.Type]
		if !ok {
			t = &TypeTotal{Type: total.Type}
			byType[total.Type] = t
		}
		t.TotalBalance = t.TotalBalance.Add(total.Balance)
		t.AccountCount += total.AccountCount
	}

	output := &AccountSummaryOutput{
		ByCurrency: make([]CurrencyTotal, 0, len(byCurrency)),
		ByType:     make([]TypeTotal, 0, len(byType)),
	}
	for _, c := range byCurrency {
		output.ByCurrency = append(output.ByCurrency, *c)
	}
	for _, t := range byType {
		output.ByType = append(output.ByType, *t)
	}
	sort.Slice(output.ByCurrency, func(i, j int) bool { return output.ByCurrency[i].Currency < output.ByCurrency[j].Currency })
	sort.Slice(output.ByType, func(i, j int) bool { return output.ByType[i].Type < output.ByType[j].Type })

	return output, nil
}
