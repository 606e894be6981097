package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// (recurring_rule_id, occurrence_date) is unique so each occurrence of a
// rule materializes at most once; both are NULL on manual rows.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID       *uuid.UUID      `gorm:"type:uuid;index"`
	DepartmentID    *uuid.UUID      `gorm:"type:uuid;index"`
	RecurringRuleID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_transactions_occurrence"`
	OccurrenceDate  *time.Time      `gorm:"type:date;uniqueIndex:idx_transactions_occurrence"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Category        string          `gorm:"type:varchar(50);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Description     string          `gorm:"type:varchar(500)"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Joins)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		DepartmentID:    m.DepartmentID,
		RecurringRuleID: m.RecurringRuleID,
		OccurrenceDate:  utcDatePtr(m.OccurrenceDate),
		Type:            entity.TransactionType(m.Type),
		Category:        m.Category,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Description:     m.Description,
		Date:            entity.DateOf(m.Date),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		AccountID:       transaction.AccountID,
		DepartmentID:    transaction.DepartmentID,
		RecurringRuleID: transaction.RecurringRuleID,
		OccurrenceDate:  utcDatePtr(transaction.OccurrenceDate),
		Type:            string(transaction.Type),
		Category:        transaction.Category,
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Description:     transaction.Description,
		Date:            entity.DateOf(transaction.Date),
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

func utcDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)
	return &d
}
