package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	OwnerID  uuid.UUID
	Name     string
	Type     entity.AccountType
	Balance  decimal.Decimal
	Currency string
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cache       *cache.Cache
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, c *cache.Cache) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		cache:       c,
	}
}

// Execute creates the account and invalidates the owner's account views.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*entity.Account, error) {
	name, err := validateAccountFields(input.Name, input.Type)
	if err != nil {
		return nil, err
	}
	currency, ok := entity.NormalizeCurrency(input.Currency)
	if !ok {
		return nil, invalidCurrency()
	}

	account := entity.NewAccount(input.OwnerID, name, input.Type, input.Balance, currency)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.cache.Invalidate(ctx, cache.ResourceAccounts, account.UserID)
	return account, nil
}

func validateAccountFields(name string, accountType entity.AccountType) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxAccountNameLength {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidAccountName,
			fmt.Sprintf("name must be between 1 and %d characters", MaxAccountNameLength),
			domainerror.ErrInvalidAccountName,
		)
	}
	if !accountType.Valid() {
		return "", domainerror.Validation(
			domainerror.ErrCodeInvalidAccountType,
			"type must be one of checking, savings, credit, investment, cash",
			domainerror.ErrInvalidAccountType,
		)
	}
	return name, nil
}

func invalidCurrency() error {
	return domainerror.Validation(
		domainerror.ErrCodeInvalidCurrency,
		"currency must be a 3-letter code",
		domainerror.ErrInvalidCurrency,
	)
}

func accountNotFound(err error) error {
	return domainerror.NotFound(domainerror.ErrCodeAccountNotFound, "Account not found", err)
}
