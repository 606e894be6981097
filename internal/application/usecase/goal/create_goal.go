package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

const (
	// MaxTitleLength is the maximum allowed length for goal titles.
	MaxTitleLength = 100
	// MaxDescriptionLength is the maximum allowed length for goal descriptions.
	MaxDescriptionLength = 500
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	TargetDate    *time.Time
	Category      string
}

// CreateGoalUseCase handles goal creation.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	cache    *cache.Cache
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, c *cache.Cache, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		cache:    c,
		clock:    clock,
	}
}

// Execute creates the goal.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*GoalOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateTarget(input.TargetAmount); err != nil {
		return nil, err
	}
	if err := validateCurrent(input.CurrentAmount); err != nil {
		return nil, err
	}
	currency, ok := entity.NormalizeCurrency(input.Currency)
	if !ok {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrency,
		)
	}

	goal := entity.NewFinancialGoal(
		input.OwnerID,
		title,
		input.Description,
		input.TargetAmount,
		input.CurrentAmount,
		currency,
		datePtr(input.TargetDate),
		strings.TrimSpace(input.Category),
	)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceGoals, goal.UserID)
	output := toOutput(goal, uc.clock.Now())
	return &output, nil
}

func toOutput(goal *entity.FinancialGoal, now time.Time) GoalOutput {
	return GoalOutput{
		Goal:               goal,
		ProgressPercentage: goal.ProgressPercentage(),
		DaysRemaining:      goal.DaysRemaining(now),
	}
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > MaxTitleLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidGoalTitle,
			fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
			domainerror.ErrInvalidGoalTitle,
		)
	}
	return title, nil
}

func validateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.Validation(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateTarget(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidTargetAmount,
			"target_amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

func validateCurrent(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.Validation(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current_amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)
	return &d
}

func goalNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeGoalNotFound, "Goal not found", err)
}
