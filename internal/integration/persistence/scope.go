// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
)

// ownedBy restricts a query to rows of owner. A nil owner leaves the query unrestricted.
func ownedBy(owner *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner == nil {
			return db
		}
		return db.Where("user_id = ?", *owner)
	}
}

// withinRange applies a half-open date range to the date column.
func withinRange(dateRange adapter.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if dateRange.From != nil {
			db = db.Where("date >= ?", *dateRange.From)
		}
		if dateRange.To != nil {
			db = db.Where("date < ?", *dateRange.To)
		}
		return db
	}
}

// isDuplicateKey reports whether err is a unique constraint violation.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// pageCount returns the number of pages for total rows, at least one.
func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages == 0 {
		return 1
	}
	return pages
}

// money rounds an aggregated amount to cents. SQLite returns SUM over
// decimal columns as floating point.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
