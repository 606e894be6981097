package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(model.AccountFromEntity(account)).Error
}

// FindByID retrieves an account by ID within the owner filter.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// ListWithBalances returns the owner's accounts, newest first, each with its
// opening balance adjusted by the signed sum of its transactions.
func (r *accountRepository) ListWithBalances(ctx context.Context, owner uuid.UUID) ([]adapter.AccountWithBalance, error) {
	var accountModels []model.AccountModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&accountModels).Error; err != nil {
		return nil, err
	}
	if len(accountModels) == 0 {
		return []adapter.AccountWithBalance{}, nil
	}

	var deltas []struct {
		AccountID uuid.UUID       `gorm:"column:account_id"`
		Delta     decimal.Decimal `gorm:"column:delta"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(`account_id,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) as delta`).
		Where("user_id = ? AND account_id IS NOT NULL", owner).
		Group("account_id").
		Scan(&deltas).Error
	if err != nil {
		return nil, err
	}

	byAccount := make(map[uuid.UUID]decimal.Decimal, len(deltas))
	for _, d := range deltas {
		byAccount[d.AccountID] = money(d.Delta)
	}

	accounts := make([]adapter.AccountWithBalance, len(accountModels))
	for i := range accountModels {
		account := accountModels[i].ToEntity()
		accounts[i] = adapter.AccountWithBalance{
			Account:           account,
			CalculatedBalance: account.Balance.Add(byAccount[account.ID]),
		}
	}
	return accounts, nil
}

// Summary returns active account totals grouped by currency and type.
func (r *accountRepository) Summary(ctx context.Context, owner uuid.UUID) ([]adapter.AccountTotal, error) {
	var rows []struct {
		Currency     string          `gorm:"column:currency"`
		Type         string          `gorm:"column:type"`
		AccountCount int64           `gorm:"column:account_count"`
		Balance      decimal.Decimal `gorm:"column:balance"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("currency, type, COUNT(*) as account_count, COALESCE(SUM(balance), 0) as balance").
		Where("user_id = ? AND is_active = ?", owner, true).
		Group("currency, type").
		Order("currency, type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]adapter.AccountTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.AccountTotal{
			Currency:     row.Currency,
			Type:         entity.AccountType(row.Type),
			AccountCount: row.AccountCount,
			Balance:      money(row.Balance),
		}
	}
	return totals, nil
}

// Update saves an existing account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Save(model.AccountFromEntity(account)).Error
}

// Delete removes an account.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// CountTransactions returns how many transactions reference the account.
func (r *accountRepository) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", id).
		Count(&count).Error
	return count, err
}
