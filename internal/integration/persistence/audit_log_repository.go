package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

// auditLogRepository implements the adapter.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(db *gorm.DB) adapter.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends an entry.
func (r *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	return r.db.WithContext(ctx).Create(model.AuditLogFromEntity(entry)).Error
}

// List returns a page of entries, newest first.
func (r *auditLogRepository) List(ctx context.Context, filter adapter.AuditLogFilter) (*adapter.AuditLogListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var entryModels []model.AuditLogModel
	if err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.AuditLogEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}

	return &adapter.AuditLogListResult{
		Entries:    entries,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: pageCount(total, filter.Limit),
	}, nil
}

// ActivityByUser groups a user's entries by action and resource, most frequent first.
func (r *auditLogRepository) ActivityByUser(ctx context.Context, userID uuid.UUID) ([]adapter.ActivityCount, error) {
	var rows []struct {
		Action   string `gorm:"column:action"`
		Resource string `gorm:"column:resource"`
		Count    int64  `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.AuditLogModel{}).
		Select("action, resource, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("action, resource").
		Order("count DESC, action, resource").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	activity := make([]adapter.ActivityCount, len(rows))
	for i, row := range rows {
		activity[i] = adapter.ActivityCount{
			Action:   row.Action,
			Resource: row.Resource,
			Count:    row.Count,
		}
	}
	return activity, nil
}
