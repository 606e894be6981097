package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

// recurringRuleRepository implements the adapter.RecurringRuleRepository interface.
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring rule repository instance.
func NewRecurringRuleRepository(db *gorm.DB) adapter.RecurringRuleRepository {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new rule in the database.
func (r *recurringRuleRepository) Create(ctx context.Context, rule *entity.RecurringRule) error {
	return r.db.WithContext(ctx).Create(model.RecurringRuleFromEntity(rule)).Error
}

// FindByID retrieves a rule by ID within the owner filter.
func (r *recurringRuleRepository) FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.RecurringRule, error) {
	var ruleModel model.RecurringRuleModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(owner)).
		Where("id = ?", id).
		First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// ListByOwner returns the owner's rules ordered by next execution.
func (r *recurringRuleRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.RecurringRule, error) {
	var ruleModels []model.RecurringRuleModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("next_execution ASC, created_at ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, err
	}
	return toRules(ruleModels), nil
}

// FindDue returns the rules that fire on today.
func (r *recurringRuleRepository) FindDue(ctx context.Context, today time.Time) ([]*entity.RecurringRule, error) {
	today = entity.DateOf(today)

	var ruleModels []model.RecurringRuleModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("next_execution <= ?", today).
		Where("end_date IS NULL OR end_date >= ?", today).
		Order("next_execution ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, err
	}
	return toRules(ruleModels), nil
}

// Materialize inserts the occurrence's transaction and advances the rule in
// one database transaction. The advance is conditional on next_execution
// still holding the fired occurrence.
func (r *recurringRuleRepository) Materialize(ctx context.Context, rule *entity.RecurringRule, transaction *entity.Transaction, next time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			if isDuplicateKey(err) {
				return domainerror.ErrOccurrenceAlreadyMaterialized
			}
			return err
		}

		result := tx.Model(&model.RecurringRuleModel{}).
			Where("id = ? AND next_execution = ?", rule.ID, entity.DateOf(rule.NextExecution)).
			Updates(map[string]any{
				"next_execution": entity.DateOf(next),
				"updated_at":     time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrOccurrenceAlreadyMaterialized
		}
		return nil
	})
}

// Update saves an existing rule.
func (r *recurringRuleRepository) Update(ctx context.Context, rule *entity.RecurringRule) error {
	return r.db.WithContext(ctx).Save(model.RecurringRuleFromEntity(rule)).Error
}

// Delete removes a rule. Transactions it produced are kept.
func (r *recurringRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecurringRuleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringRuleNotFound
	}
	return nil
}

func toRules(ruleModels []model.RecurringRuleModel) []*entity.RecurringRule {
	rules := make([]*entity.RecurringRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = ruleModels[i].ToEntity()
	}
	return rules
}
