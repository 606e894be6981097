package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeTransactionRepository struct {
	adapter.TransactionRepository
	rows map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepository(rows ...*entity.Transaction) *fakeTransactionRepository {
	f := &fakeTransactionRepository{rows: map[uuid.UUID]*entity.Transaction{}}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeTransactionRepository) Create(_ context.Context, tx *entity.Transaction) error {
	f.rows[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Transaction, error) {
	tx, ok := f.rows[id]
	if !ok || (owner != nil && tx.UserID != *owner) {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeTransactionRepository) Update(_ context.Context, tx *entity.Transaction) error {
	f.rows[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeAccountRepository struct {
	adapter.AccountRepository
	accounts map[uuid.UUID]*entity.Account
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id uuid.UUID, owner *uuid.UUID) (*entity.Account, error) {
	a, ok := f.accounts[id]
	if !ok || (owner != nil && a.UserID != *owner) {
		return nil, domainerror.ErrAccountNotFound
	}
	return a, nil
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(cachestore.NewRedisStore(client), cache.DefaultTTLPolicy()), mr
}

func seedOwnerKeys(mr *miniredis.Miniredis, owner uuid.UUID) {
	for _, key := range cache.OwnerKeys(owner) {
		_ = mr.Set(key, "{}")
	}
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	clock := fixedClock{now: time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)}
	bobsAccount := &entity.Account{ID: uuid.New(), UserID: bob}
	accounts := &fakeAccountRepository{accounts: map[uuid.UUID]*entity.Account{bobsAccount.ID: bobsAccount}}

	t.Run("zero date defaults to today", func(t *testing.T) {
		c, _ := newTestCache(t)
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), accounts, c, clock)

		created, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  alice,
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromFloat(12.5),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got := created.Date.Format("2006-01-02"); got != "2024-03-15" {
			t.Errorf("Date = %s, want 2024-03-15", got)
		}
		if created.Currency != entity.DefaultCurrency {
			t.Errorf("Currency = %s, want %s", created.Currency, entity.DefaultCurrency)
		}
	})

	t.Run("foreign account reads as not found", func(t *testing.T) {
		c, _ := newTestCache(t)
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo, accounts, c, clock)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:   alice,
			AccountID: &bobsAccount.ID,
			Type:      entity.TransactionTypeExpense,
			Category:  "Food",
			Amount:    decimal.NewFromInt(1),
		})
		domainErr, ok := domainerror.As(err)
		if !ok || domainErr.Kind != domainerror.KindNotFound {
			t.Fatalf("error = %v, want not found", err)
		}
		if len(repo.rows) != 0 {
			t.Error("nothing should be stored")
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			input   CreateTransactionInput
			wantErr error
		}{
			{"unknown type", CreateTransactionInput{OwnerID: alice, Type: "transfer", Category: "Food", Amount: decimal.NewFromInt(1)}, domainerror.ErrInvalidTransactionType},
			{"zero amount", CreateTransactionInput{OwnerID: alice, Type: entity.TransactionTypeIncome, Category: "Pay", Amount: decimal.Zero}, domainerror.ErrInvalidAmount},
			{"blank category", CreateTransactionInput{OwnerID: alice, Type: entity.TransactionTypeIncome, Category: " ", Amount: decimal.NewFromInt(1)}, domainerror.ErrInvalidCategory},
			{"bad currency", CreateTransactionInput{OwnerID: alice, Type: entity.TransactionTypeIncome, Category: "Pay", Amount: decimal.NewFromInt(1), Currency: "DOLLARS"}, domainerror.ErrInvalidCurrency},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c, _ := newTestCache(t)
				uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), accounts, c, clock)
				if _, err := uc.Execute(ctx, tt.input); !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("invalidates only the owner's dependent keys", func(t *testing.T) {
		c, mr := newTestCache(t)
		seedOwnerKeys(mr, alice)
		seedOwnerKeys(mr, bob)
		uc := NewCreateTransactionUseCase(newFakeTransactionRepository(), accounts, c, clock)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			OwnerID:  alice,
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromInt(5),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		for _, key := range cache.KeysFor(cache.ResourceTransactions, alice) {
			if mr.Exists(key) {
				t.Errorf("%s should be invalidated", key)
			}
		}
		for _, key := range cache.OwnerKeys(bob) {
			if !mr.Exists(key) {
				t.Errorf("%s belongs to bob and must survive", key)
			}
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	newRow := func() *entity.Transaction {
		return entity.NewTransaction(alice, nil, entity.TransactionTypeExpense, "Food", decimal.NewFromInt(10), "USD", "", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	}

	t.Run("other user cannot delete", func(t *testing.T) {
		c, _ := newTestCache(t)
		row := newRow()
		repo := newFakeTransactionRepository(row)

		err := NewDeleteTransactionUseCase(repo, c).Execute(ctx, row.ID, &bob)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("error = %v, want ErrTransactionNotFound", err)
		}
		if _, ok := repo.rows[row.ID]; !ok {
			t.Error("row must survive")
		}
	})

	t.Run("admin delete invalidates the row owner", func(t *testing.T) {
		c, mr := newTestCache(t)
		seedOwnerKeys(mr, alice)
		row := newRow()
		repo := newFakeTransactionRepository(row)

		if err := NewDeleteTransactionUseCase(repo, c).Execute(ctx, row.ID, nil); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if _, ok := repo.rows[row.ID]; ok {
			t.Error("row should be deleted")
		}
		if mr.Exists(cache.BudgetsKey(alice)) {
			t.Error("owner's budget listing should be invalidated")
		}
	})
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	row := entity.NewTransaction(alice, nil, entity.TransactionTypeExpense, "Food", decimal.NewFromInt(10), "USD", "", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	c, _ := newTestCache(t)
	repo := newFakeTransactionRepository(row)
	uc := NewUpdateTransactionUseCase(repo, &fakeAccountRepository{}, c)

	amount := decimal.NewFromInt(25)
	category := "  Groceries "
	updated, err := uc.Execute(ctx, UpdateTransactionInput{ID: row.ID, Owner: &alice, Amount: &amount, Category: &category})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !updated.Amount.Equal(amount) || updated.Category != "Groceries" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Type != entity.TransactionTypeExpense {
		t.Error("absent fields must be preserved")
	}
}
