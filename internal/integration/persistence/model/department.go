package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// DepartmentModel represents the departments table in the database.
type DepartmentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Budget      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ManagerID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DepartmentModel.
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToEntity converts a DepartmentModel to a domain Department entity.
func (m *DepartmentModel) ToEntity() *entity.Department {
	return &entity.Department{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Budget:      m.Budget,
		ManagerID:   m.ManagerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DepartmentFromEntity creates a DepartmentModel from a domain Department entity.
func DepartmentFromEntity(department *entity.Department) *DepartmentModel {
	return &DepartmentModel{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		Budget:      department.Budget,
		ManagerID:   department.ManagerID,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}
