package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// GoalModel represents the financial_goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD'"`
	TargetDate    *time.Time      `gorm:"type:date"`
	Category      string          `gorm:"type:varchar(50)"`
	IsAchieved    bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "financial_goals"
}

// ToEntity converts a GoalModel to a domain FinancialGoal entity.
func (m *GoalModel) ToEntity() *entity.FinancialGoal {
	return &entity.FinancialGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Currency:      m.Currency,
		TargetDate:    utcDatePtr(m.TargetDate),
		Category:      m.Category,
		IsAchieved:    m.IsAchieved,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain FinancialGoal entity.
func GoalFromEntity(goal *entity.FinancialGoal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Title:         goal.Title,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Currency:      goal.Currency,
		TargetDate:    utcDatePtr(goal.TargetDate),
		Category:      goal.Category,
		IsAchieved:    goal.IsAchieved,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
