package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// ProcessDueOutput reports how many occurrences were materialized.
type ProcessDueOutput struct {
	Processed int
}

// ProcessDueUseCase materializes every due occurrence of every active rule.
type ProcessDueUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	cache    *cache.Cache
	clock    adapter.Clock
	logger   *slog.Logger
}

// NewProcessDueUseCase creates a new ProcessDueUseCase instance.
func NewProcessDueUseCase(ruleRepo adapter.RecurringRuleRepository, c *cache.Cache, clock adapter.Clock) *ProcessDueUseCase {
	return &ProcessDueUseCase{
		ruleRepo: ruleRepo,
		cache:    c,
		clock:    clock,
		logger:   slog.With("component", "recurring_processor"),
	}
}

// Execute fires each rule due today once. A rule that fails is logged and
// skipped without affecting the others, and an occurrence that another run
// already materialized is not counted. Owners with new transactions get
// their transaction-dependent caches invalidated.
func (uc *ProcessDueUseCase) Execute(ctx context.Context) (*ProcessDueOutput, error) {
	today := entity.DateOf(uc.clock.Now())

	rules, err := uc.ruleRepo.FindDue(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring transactions: %w", err)
	}

	output := &ProcessDueOutput{}
	owners := map[uuid.UUID]struct{}{}
	for _, rule := range rules {
		if !rule.IsDue(today) {
			continue
		}

		transaction := rule.Materialize(today)
		next := rule.FollowingExecution()
		if err := uc.ruleRepo.Materialize(ctx, rule, transaction, next); err != nil {
			if errors.Is(err, domainerror.ErrOccurrenceAlreadyMaterialized) {
				uc.logger.InfoContext(ctx, "Occurrence already materialized",
					"rule_id", rule.ID,
					"occurrence", rule.NextExecution.Format("2006-01-02"),
				)
				continue
			}
			uc.logger.ErrorContext(ctx, "Failed to process recurring transaction",
				"rule_id", rule.ID,
				"error", err,
			)
			continue
		}

		output.Processed++
		owners[rule.UserID] = struct{}{}
	}

	for owner := range owners {
		uc.cache.Invalidate(ctx, cache.ResourceTransactions, owner)
	}

	uc.logger.InfoContext(ctx, "Processed recurring transactions", "processed", output.Processed, "due", len(rules))
	return output, nil
}
