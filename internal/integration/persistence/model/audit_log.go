package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// AuditLogModel represents the audit_logs table in the database.
type AuditLogModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(20);not null;index"`
	Resource  string     `gorm:"type:varchar(50);not null;index"`
	Details   string     `gorm:"type:text"`
	IPAddress string     `gorm:"type:varchar(45)"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the AuditLogModel.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToEntity converts an AuditLogModel to a domain AuditLogEntry.
func (m *AuditLogModel) ToEntity() *entity.AuditLogEntry {
	return &entity.AuditLogEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    m.Action,
		Resource:  m.Resource,
		Details:   m.Details,
		IPAddress: m.IPAddress,
		CreatedAt: m.CreatedAt,
	}
}

// AuditLogFromEntity creates an AuditLogModel from a domain AuditLogEntry.
func AuditLogFromEntity(entry *entity.AuditLogEntry) *AuditLogModel {
	return &AuditLogModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Resource:  entry.Resource,
		Details:   entry.Details,
		IPAddress: entry.IPAddress,
		CreatedAt: entry.CreatedAt,
	}
}
