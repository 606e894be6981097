package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Department groups users for organizational budgeting.
type Department struct {
	ID          uuid.UUID
	Name        string
	Description string
	Budget      decimal.Decimal
	ManagerID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDepartment creates a new Department.
func NewDepartment(name, description string, budget decimal.Decimal, managerID *uuid.UUID) *Department {
	now := time.Now().UTC()
	return &Department{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Budget:      budget,
		ManagerID:   managerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
