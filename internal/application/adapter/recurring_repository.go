package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
)

// RecurringRuleRepository defines the interface for recurring rule persistence operations.
type RecurringRuleRepository interface {
	// Create creates a new rule.
	Create(ctx context.Context, rule *entity.RecurringRule) error

	// FindByID retrieves a rule by ID within the owner filter.
	FindByID(ctx context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.RecurringRule, error)

	// ListByOwner returns the owner's rules ordered by next execution.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.RecurringRule, error)

	// FindDue returns active rules with next_execution <= today whose end date
	// is absent or not before today.
	FindDue(ctx context.Context, today time.Time) ([]*entity.RecurringRule, error)

	// Materialize inserts the occurrence's transaction and moves the rule's
	// next_execution to next in a single database transaction. An occurrence
	// that already exists yields domainerror.ErrOccurrenceAlreadyMaterialized
	// and changes nothing.
	Materialize(ctx context.Context, rule *entity.RecurringRule, transaction *entity.Transaction, next time.Time) error

	// Update saves an existing rule.
	Update(ctx context.Context, rule *entity.RecurringRule) error

	// Delete removes a rule.
	Delete(ctx context.Context, id uuid.UUID) error
}
