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

// departmentRepository implements the adapter.DepartmentRepository interface.
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository instance.
func NewDepartmentRepository(db *gorm.DB) adapter.DepartmentRepository {
	return &departmentRepository{
		db: db,
	}
}

// Create creates a new department in the database.
func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	if err := r.db.WithContext(ctx).Create(model.DepartmentFromEntity(department)).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerror.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// FindByID retrieves a department by ID.
func (r *departmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	var departmentModel model.DepartmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&departmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDepartmentNotFound
		}
		return nil, result.Error
	}
	return departmentModel.ToEntity(), nil
}

// List returns every department ordered by name.
func (r *departmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	var departmentModels []model.DepartmentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departmentModels).Error; err != nil {
		return nil, err
	}

	departments := make([]*entity.Department, len(departmentModels))
	for i := range departmentModels {
		departments[i] = departmentModels[i].ToEntity()
	}
	return departments, nil
}

// Update saves an existing department.
func (r *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	if err := r.db.WithContext(ctx).Save(model.DepartmentFromEntity(department)).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerror.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Delete removes a department and detaches its users and transactions.
func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserModel{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TransactionModel{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.DepartmentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrDepartmentNotFound
		}
		return nil
	})
}

// CountMembers returns how many users belong to the department.
func (r *departmentRepository) CountMembers(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

// Spending returns expense totals per category for transactions tagged with
// the department or owned by its members, largest first.
func (r *departmentRepository) Spending(ctx context.Context, id uuid.UUID) ([]adapter.DepartmentSpending, error) {
	members := r.db.Model(&model.UserModel{}).Select("id").Where("department_id = ?", id)

	var rows []struct {
		Category         string          `gorm:"column:category"`
		TransactionCount int64           `gorm:"column:transaction_count"`
		Total            decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COUNT(*) as transaction_count, COALESCE(SUM(amount), 0) as total").
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Where("department_id = ? OR user_id IN (?)", id, members).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spending := make([]adapter.DepartmentSpending, len(rows))
	for i, row := range rows {
		spending[i] = adapter.DepartmentSpending{
			Category:         row.Category,
			TransactionCount: row.TransactionCount,
			Total:            money(row.Total),
		}
	}
	return spending, nil
}
