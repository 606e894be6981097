package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by ID within the owner filter.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// filtered applies filter criteria. Columns are qualified so the query can be
// joined with users.
func filtered(filter adapter.TransactionFilter) func(*gorm.DB) *gorm.DB {
	return func(query *gorm.DB) *gorm.DB {
		if filter.Owner != nil {
			query = query.Where("transactions.user_id = ?", *filter.Owner)
		}
		if filter.AccountID != nil {
			query = query.Where("transactions.account_id = ?", *filter.AccountID)
		}
		if filter.Type != nil {
			query = query.Where("transactions.type = ?", string(*filter.Type))
		}
		if filter.Category != "" {
			query = query.Where("transactions.category = ?", filter.Category)
		}
		if filter.StartDate != nil {
			query = query.Where("transactions.date >= ?", entity.DateOf(*filter.StartDate))
		}
		if filter.EndDate != nil {
			query = query.Where("transactions.date <= ?", entity.DateOf(*filter.EndDate))
		}
		return query
	}
}

// page counts the filtered rows and loads the requested page, newest first.
func (r *transactionRepository) page(
	ctx context.Context,
	filter adapter.TransactionFilter,
	pagination adapter.TransactionPagination,
	joinOwner bool,
) ([]model.TransactionModel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Scopes(filtered(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})
	if joinOwner {
		query = query.Joins("User")
	}

	var transactionModels []model.TransactionModel
	err := query.
		Scopes(filtered(filter)).
		Order("transactions.date DESC, transactions.created_at DESC").
		Offset((pagination.Page - 1) * pagination.Limit).
		Limit(pagination.Limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, err
	}
	return transactionModels, total, nil
}

// List retrieves a page of transactions, newest first.
func (r *transactionRepository) List(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	transactionModels, total, err := r.page(ctx, filter, pagination, false)
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   pageCount(total, pagination.Limit),
	}, nil
}

// ListWithOwners retrieves a page of transactions joined with their owners.
func (r *transactionRepository) ListWithOwners(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.OwnedTransactionListResult, error) {
	transactionModels, total, err := r.page(ctx, filter, pagination, true)
	if err != nil {
		return nil, err
	}

	transactions := make([]adapter.OwnedTransaction, len(transactionModels))
	for i := range transactionModels {
		owned := adapter.OwnedTransaction{Transaction: transactionModels[i].ToEntity()}
		if u := transactionModels[i].User; u != nil {
			owned.Username = u.Username
			owned.Email = u.Email
		}
		transactions[i] = owned
	}

	return &adapter.OwnedTransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   pageCount(total, pagination.Limit),
	}, nil
}

// Recent returns the owner's latest transactions.
func (r *transactionRepository) Recent(ctx context.Context, owner uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// Categories returns the distinct categories used by the owner, sorted.
func (r *transactionRepository) Categories(ctx context.Context, owner uuid.UUID) ([]string, error) {
	categories := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", owner).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// ExpensesByCategory sums expense amounts per category for dates in [from, to).
func (r *transactionRepository) ExpensesByCategory(ctx context.Context, owner uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ?", owner, string(entity.TransactionTypeExpense)).
		Where("date >= ? AND date < ?", entity.DateOf(from), entity.DateOf(to)).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Category] = money(row.Total)
	}
	return totals, nil
}

// Update saves an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(model.TransactionFromEntity(transaction)).Error
}

// Delete removes a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
