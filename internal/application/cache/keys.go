// Package cache provides read-through caching for expensive reads and the
// exact key sets each write invalidates.
package cache

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// Resource identifies a family of writes for invalidation.
type Resource int

const (
	ResourceAccounts Resource = iota + 1
	ResourceTransactions
	ResourceBudgets
	ResourceGoals
	ResourceRecurring
	ResourceDepartments
)

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case ResourceAccounts:
		return "accounts"
	case ResourceTransactions:
		return "transactions"
	case ResourceBudgets:
		return "budgets"
	case ResourceGoals:
		return "goals"
	case ResourceRecurring:
		return "recurring"
	case ResourceDepartments:
		return "departments"
	default:
		return "unknown"
	}
}

// DepartmentsKey caches the department listing shared by all users.
const DepartmentsKey = "departments:list"

// AccountsKey caches an owner's account listing.
func AccountsKey(owner uuid.UUID) string {
	return "accounts:" + owner.String()
}

// BudgetsKey caches an owner's budget listing.
func BudgetsKey(owner uuid.UUID) string {
	return "budgets:" + owner.String()
}

// GoalsKey caches an owner's goal listing.
func GoalsKey(owner uuid.UUID) string {
	return "goals:" + owner.String()
}

// DashboardKey caches an owner's dashboard.
func DashboardKey(owner uuid.UUID) string {
	return "dashboard:" + owner.String()
}

// AnalyticsKey caches an owner's analytics for one period.
func AnalyticsKey(owner uuid.UUID, period entity.AnalyticsPeriod) string {
	return "analytics:" + owner.String() + ":" + string(period)
}

// aggregateKeys lists every per-owner key that aggregates across resources.
func aggregateKeys(owner uuid.UUID) []string {
	keys := []string{DashboardKey(owner)}
	for _, period := range entity.AnalyticsPeriods() {
		keys = append(keys, AnalyticsKey(owner, period))
	}
	return keys
}

// KeysFor returns the exact keys made stale when resource changes for owner.
//
// Transactions feed account balances and budget spending as well as the
// aggregates, so a transaction write clears those listings too.
func KeysFor(resource Resource, owner uuid.UUID) []string {
	switch resource {
	case ResourceTransactions:
		return append([]string{AccountsKey(owner), BudgetsKey(owner)}, aggregateKeys(owner)...)
	case ResourceAccounts:
		return append([]string{AccountsKey(owner)}, aggregateKeys(owner)...)
	case ResourceBudgets:
		return append([]string{BudgetsKey(owner)}, aggregateKeys(owner)...)
	case ResourceGoals:
		return append([]string{GoalsKey(owner)}, aggregateKeys(owner)...)
	case ResourceRecurring:
		return aggregateKeys(owner)
	case ResourceDepartments:
		return []string{DepartmentsKey}
	default:
		return nil
	}
}

// OwnerKeys returns every key cached for owner.
func OwnerKeys(owner uuid.UUID) []string {
	return append([]string{AccountsKey(owner), BudgetsKey(owner), GoalsKey(owner)}, aggregateKeys(owner)...)
}
