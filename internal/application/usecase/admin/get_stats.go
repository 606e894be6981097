package admin

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// UserStats counts users per role.
type UserStats struct {
	TotalUsers    int64
	AdminCount    int64
	UserCount     int64
	ReadOnlyCount int64
}

// TransactionStats totals every transaction in the system.
type TransactionStats struct {
	TotalTransactions int64
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
}

// StatsOutput represents system-wide statistics.
type StatsOutput struct {
	Users        UserStats
	Transactions TransactionStats
}

// GetStatsUseCase computes system-wide statistics.
type GetStatsUseCase struct {
	userRepo      adapter.UserRepository
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(userRepo adapter.UserRepository, analyticsRepo adapter.AnalyticsRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Execute counts users per role and totals all transactions.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	var (
		byRole map[entity.Role]int64
		totals adapter.Totals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byRole, err = uc.userRepo.CountByRole(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = uc.analyticsRepo.Totals(gctx, nil, adapter.DateRange{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	users := UserStats{}
	for role, count := range byRole {
		users.TotalUsers += count
		switch role {
		case entity.RoleAdmin:
			users.AdminCount = count
		case entity.RoleUser:
			users.UserCount = count
		case entity.RoleReadOnly:
			users.ReadOnlyCount = count
		}
	}

	return &StatsOutput{
		Users: users,
		Transactions: TransactionStats{
			TotalTransactions: totals.TransactionCount,
			TotalIncome:       totals.Income,
			TotalExpenses:     totals.Expense,
		},
	}, nil
}
