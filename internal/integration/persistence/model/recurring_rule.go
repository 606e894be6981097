package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// RecurringRuleModel represents the recurring_transactions table in the database.
type RecurringRuleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID     *uuid.UUID      `gorm:"type:uuid"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Category      string          `gorm:"type:varchar(50);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Description   string          `gorm:"type:varchar(500)"`
	Frequency     string          `gorm:"type:varchar(10);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	NextExecution time.Time       `gorm:"type:date;not null;index"`
	IsActive      bool            `gorm:"not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringRuleModel.
func (RecurringRuleModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringRuleModel to a domain RecurringRule entity.
func (m *RecurringRuleModel) ToEntity() *entity.RecurringRule {
	return &entity.RecurringRule{
		ID:            m.ID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Type:          entity.TransactionType(m.Type),
		Category:      m.Category,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Description:   m.Description,
		Frequency:     entity.Frequency(m.Frequency),
		StartDate:     entity.DateOf(m.StartDate),
		EndDate:       utcDatePtr(m.EndDate),
		NextExecution: entity.DateOf(m.NextExecution),
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringRuleFromEntity creates a RecurringRuleModel from a domain RecurringRule entity.
func RecurringRuleFromEntity(rule *entity.RecurringRule) *RecurringRuleModel {
	return &RecurringRuleModel{
		ID:            rule.ID,
		UserID:        rule.UserID,
		AccountID:     rule.AccountID,
		Type:          string(rule.Type),
		Category:      rule.Category,
		Amount:        rule.Amount,
		Currency:      rule.Currency,
		Description:   rule.Description,
		Frequency:     string(rule.Frequency),
		StartDate:     entity.DateOf(rule.StartDate),
		EndDate:       utcDatePtr(rule.EndDate),
		NextExecution: entity.DateOf(rule.NextExecution),
		IsActive:      rule.IsActive,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}
}
