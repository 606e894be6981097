package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

// analyticsRepository implements the adapter.AnalyticsRepository interface.
// Time bucketing is left to callers so the queries run unchanged on
// PostgreSQL and SQLite.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (r *analyticsRepository) transactions(ctx context.Context, owner *uuid.UUID, dateRange adapter.DateRange) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Scopes(ownedBy(owner), withinRange(dateRange))
}

// Totals sums income and expense in the range.
func (r *analyticsRepository) Totals(ctx context.Context, owner *uuid.UUID, dateRange adapter.DateRange) (adapter.Totals, error) {
	var result struct {
		Income           decimal.Decimal `gorm:"column:income"`
		Expense          decimal.Decimal `gorm:"column:expense"`
		TransactionCount int64           `gorm:"column:transaction_count"`
	}

	err := r.transactions(ctx, owner, dateRange).
		Select(`
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) as expense,
			COUNT(*) as transaction_count`).
		Scan(&result).Error
	if err != nil {
		return adapter.Totals{}, fmt.Errorf("failed to get totals: %w", err)
	}

	return adapter.Totals{
		Income:           money(result.Income),
		Expense:          money(result.Expense),
		TransactionCount: result.TransactionCount,
	}, nil
}

// CategoryBreakdown sums amounts per category and type in the range, largest first.
func (r *analyticsRepository) CategoryBreakdown(ctx context.Context, owner *uuid.UUID, dateRange adapter.DateRange) ([]adapter.CategoryTotal, error) {
	var rows []struct {
		Category         string          `gorm:"column:category"`
		Type             string          `gorm:"column:type"`
		Total            decimal.Decimal `gorm:"column:total"`
		TransactionCount int64           `gorm:"column:transaction_count"`
	}

	err := r.transactions(ctx, owner, dateRange).
		Select("category, type, COALESCE(SUM(amount), 0) as total, COUNT(*) as transaction_count").
		Group("category, type").
		Order("total DESC, category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	breakdown := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		breakdown[i] = adapter.CategoryTotal{
			Category:         row.Category,
			Type:             entity.TransactionType(row.Type),
			Total:            money(row.Total),
			TransactionCount: row.TransactionCount,
		}
	}
	return breakdown, nil
}

// AmountPoints returns every transaction's date, type and amount in the range, oldest first.
func (r *analyticsRepository) AmountPoints(ctx context.Context, owner *uuid.UUID, dateRange adapter.DateRange) ([]adapter.AmountPoint, error) {
	var rows []struct {
		Date   time.Time       `gorm:"column:date"`
		Type   string          `gorm:"column:type"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}

	err := r.transactions(ctx, owner, dateRange).
		Select("date, type, amount").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get amount points: %w", err)
	}

	points := make([]adapter.AmountPoint, len(rows))
	for i, row := range rows {
		points[i] = adapter.AmountPoint{
			Date:   entity.DateOf(row.Date),
			Type:   entity.TransactionType(row.Type),
			Amount: row.Amount,
		}
	}
	return points, nil
}
