package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence/model"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate email is reported as duplicate key", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewUserRepository(db)
		mustCreateUser(t, db, "alice", entity.RoleUser)

		dup := entity.NewUser("alice2", "alice@example.com", "hash", entity.RoleUser)
		if err := repo.Create(ctx, dup); !errors.Is(err, domainerror.ErrDuplicateKey) {
			t.Errorf("Create() error = %v, want ErrDuplicateKey", err)
		}

		exists, err := repo.ExistsByEmailOrUsername(ctx, "other@example.com", "alice")
		if err != nil || !exists {
			t.Errorf("ExistsByEmailOrUsername() = %v, %v; want true", exists, err)
		}
	})

	t.Run("role round trips and counts per role", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewUserRepository(db)
		a := mustCreateUser(t, db, "alice", entity.RoleUser)
		mustCreateUser(t, db, "bob", entity.RoleReadOnly)
		mustCreateUser(t, db, "carol", entity.RoleUser)

		if err := repo.UpdateRole(ctx, a.ID, entity.RoleAdmin); err != nil {
			t.Fatalf("UpdateRole() error = %v", err)
		}
		got, err := repo.FindByID(ctx, a.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if got.Role != entity.RoleAdmin {
			t.Errorf("Role = %v, want admin", got.Role)
		}

		counts, err := repo.CountByRole(ctx)
		if err != nil {
			t.Fatalf("CountByRole() error = %v", err)
		}
		want := map[entity.Role]int64{entity.RoleAdmin: 1, entity.RoleUser: 1, entity.RoleReadOnly: 1}
		for role, n := range want {
			if counts[role] != n {
				t.Errorf("counts[%v] = %d, want %d", role, counts[role], n)
			}
		}
	})

	t.Run("update role of unknown user", func(t *testing.T) {
		db := newTestDB(t)
		err := persistence.NewUserRepository(db).UpdateRole(ctx, uuid.New(), entity.RoleAdmin)
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("UpdateRole() error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("delete removes owned rows only", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewUserRepository(db)
		victim := mustCreateUser(t, db, "victim", entity.RoleUser)
		other := mustCreateUser(t, db, "other", entity.RoleUser)

		mustCreateTransaction(t, db, victim.ID, entity.TransactionTypeExpense, "Food", "10", date(2024, 3, 1))
		mustCreateTransaction(t, db, other.ID, entity.TransactionTypeExpense, "Food", "10", date(2024, 3, 1))
		budget := entity.NewBudget(victim.ID, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly, "", date(2024, 1, 1), nil)
		if err := persistence.NewBudgetRepository(db).Create(ctx, budget); err != nil {
			t.Fatal(err)
		}

		if err := repo.Delete(ctx, victim.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		var count int64
		db.Model(&model.TransactionModel{}).Count(&count)
		if count != 1 {
			t.Errorf("transactions left = %d, want 1", count)
		}
		db.Model(&model.BudgetModel{}).Count(&count)
		if count != 0 {
			t.Errorf("budgets left = %d, want 0", count)
		}
		if _, err := repo.FindByID(ctx, victim.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("FindByID() error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("ownership is enforced by the query", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewTransactionRepository(db)
		owner := mustCreateUser(t, db, "owner", entity.RoleUser)
		stranger := mustCreateUser(t, db, "stranger", entity.RoleUser)
		tx := mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeIncome, "Salary", "1000", date(2024, 3, 1))

		if _, err := repo.FindByID(ctx, tx.ID, &stranger.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("FindByID(stranger) error = %v, want ErrTransactionNotFound", err)
		}
		if _, err := repo.FindByID(ctx, tx.ID, &owner.ID); err != nil {
			t.Errorf("FindByID(owner) error = %v", err)
		}
		if _, err := repo.FindByID(ctx, tx.ID, nil); err != nil {
			t.Errorf("FindByID(unrestricted) error = %v", err)
		}
	})

	t.Run("list filters and paginates newest first", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewTransactionRepository(db)
		owner := mustCreateUser(t, db, "owner", entity.RoleUser)
		other := mustCreateUser(t, db, "other", entity.RoleUser)
		for day := 1; day <= 5; day++ {
			mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeExpense, "Food", "10", date(2024, 3, day))
		}
		mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeIncome, "Salary", "500", date(2024, 3, 6))
		mustCreateTransaction(t, db, other.ID, entity.TransactionTypeExpense, "Food", "10", date(2024, 3, 7))

		expense := entity.TransactionTypeExpense
		result, err := repo.List(ctx,
			adapter.TransactionFilter{Owner: &owner.ID, Type: &expense},
			adapter.TransactionPagination{Page: 1, Limit: 2},
		)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 5 || result.TotalPages != 3 || len(result.Transactions) != 2 {
			t.Fatalf("got total=%d pages=%d len=%d", result.Total, result.TotalPages, len(result.Transactions))
		}
		if !result.Transactions[0].Date.Equal(date(2024, 3, 5)) {
			t.Errorf("first date = %v, want 2024-03-05", result.Transactions[0].Date)
		}

		start, end := date(2024, 3, 2), date(2024, 3, 3)
		ranged, err := repo.List(ctx,
			adapter.TransactionFilter{Owner: &owner.ID, StartDate: &start, EndDate: &end},
			adapter.TransactionPagination{Page: 1, Limit: 20},
		)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if ranged.Total != 2 {
			t.Errorf("ranged total = %d, want 2 (inclusive bounds)", ranged.Total)
		}
	})

	t.Run("admin listing joins owners", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewTransactionRepository(db)
		alice := mustCreateUser(t, db, "alice", entity.RoleUser)
		bob := mustCreateUser(t, db, "bob", entity.RoleUser)
		mustCreateTransaction(t, db, alice.ID, entity.TransactionTypeExpense, "Food", "10", date(2024, 3, 1))
		mustCreateTransaction(t, db, bob.ID, entity.TransactionTypeExpense, "Rent", "900", date(2024, 3, 2))

		result, err := repo.ListWithOwners(ctx, adapter.TransactionFilter{}, adapter.TransactionPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("ListWithOwners() error = %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("Total = %d, want 2", result.Total)
		}
		if result.Transactions[0].Username != "bob" || result.Transactions[1].Email != "alice@example.com" {
			t.Errorf("owners = %+v", result.Transactions)
		}
	})

	t.Run("categories and expense sums", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewTransactionRepository(db)
		owner := mustCreateUser(t, db, "owner", entity.RoleUser)
		mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeExpense, "Food", "12.50", date(2024, 3, 1))
		mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeExpense, "Food", "7.25", date(2024, 3, 10))
		mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeExpense, "Travel", "100", date(2024, 4, 1))
		mustCreateTransaction(t, db, owner.ID, entity.TransactionTypeIncome, "Salary", "1000", date(2024, 3, 5))

		categories, err := repo.Categories(ctx, owner.ID)
		if err != nil {
			t.Fatalf("Categories() error = %v", err)
		}
		if len(categories) != 3 || categories[0] != "Food" || categories[2] != "Travel" {
			t.Errorf("Categories() = %v", categories)
		}

		sums, err := repo.ExpensesByCategory(ctx, owner.ID, date(2024, 3, 1), date(2024, 4, 1))
		if err != nil {
			t.Fatalf("ExpensesByCategory() error = %v", err)
		}
		if !sums["Food"].Equal(decimal.RequireFromString("19.75")) {
			t.Errorf("Food = %s, want 19.75", sums["Food"])
		}
		if _, ok := sums["Travel"]; ok {
			t.Error("Travel is outside the half-open range")
		}
		if _, ok := sums["Salary"]; ok {
			t.Error("income must not be summed")
		}
	})
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := persistence.NewAccountRepository(db)
	owner := mustCreateUser(t, db, "owner", entity.RoleUser)

	account := entity.NewAccount(owner.ID, "Checking", entity.AccountTypeChecking, decimal.NewFromInt(100), "")
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	empty := entity.NewAccount(owner.ID, "Savings", entity.AccountTypeSavings, decimal.NewFromInt(50), "EUR")
	if err := repo.Create(ctx, empty); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	txRepo := persistence.NewTransactionRepository(db)
	for _, tx := range []*entity.Transaction{
		entity.NewTransaction(owner.ID, &account.ID, entity.TransactionTypeIncome, "Salary", decimal.NewFromInt(40), "", "", date(2024, 3, 1)),
		entity.NewTransaction(owner.ID, &account.ID, entity.TransactionTypeExpense, "Food", decimal.RequireFromString("15.50"), "", "", date(2024, 3, 2)),
	} {
		if err := txRepo.Create(ctx, tx); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("calculated balance applies signed transactions", func(t *testing.T) {
		accounts, err := repo.ListWithBalances(ctx, owner.ID)
		if err != nil {
			t.Fatalf("ListWithBalances() error = %v", err)
		}
		if len(accounts) != 2 {
			t.Fatalf("len = %d, want 2", len(accounts))
		}
		for _, a := range accounts {
			want := a.Account.Balance
			if a.Account.ID == account.ID {
				want = decimal.RequireFromString("124.50")
			}
			if !a.CalculatedBalance.Equal(want) {
				t.Errorf("%s calculated = %s, want %s", a.Account.Name, a.CalculatedBalance, want)
			}
		}
	})

	t.Run("summary groups by currency and type", func(t *testing.T) {
		totals, err := repo.Summary(ctx, owner.ID)
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("len = %d, want 2", len(totals))
		}
		if totals[0].Currency != "EUR" || !totals[0].Balance.Equal(decimal.NewFromInt(50)) {
			t.Errorf("totals[0] = %+v", totals[0])
		}
	})

	t.Run("transaction references are counted", func(t *testing.T) {
		n, err := repo.CountTransactions(ctx, account.ID)
		if err != nil || n != 2 {
			t.Errorf("CountTransactions() = %d, %v; want 2", n, err)
		}
	})
}

func TestRecurringRuleRepository(t *testing.T) {
	ctx := context.Background()

	newRule := func(owner uuid.UUID, start time.Time, end *time.Time) *entity.RecurringRule {
		return entity.NewRecurringRule(owner, nil, entity.TransactionTypeExpense, "Rent", decimal.NewFromInt(900), "", "Rent", entity.FrequencyMonthly, start, end)
	}

	t.Run("due rules honour activity and end date", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewRecurringRuleRepository(db)
		owner := mustCreateUser(t, db, "owner", entity.RoleUser)

		due := newRule(owner.ID, date(2024, 1, 15), nil)
		ended := newRule(owner.ID, date(2024, 1, 15), ptr(date(2024, 2, 1)))
		inactive := newRule(owner.ID, date(2024, 1, 15), nil)
		inactive.IsActive = false
		future := newRule(owner.ID, date(2024, 3, 1), nil)
		for _, r := range []*entity.RecurringRule{due, ended, inactive, future} {
			if err := repo.Create(ctx, r); err != nil {
				t.Fatal(err)
			}
		}

		rules, err := repo.FindDue(ctx, date(2024, 2, 20))
		if err != nil {
			t.Fatalf("FindDue() error = %v", err)
		}
		if len(rules) != 1 || rules[0].ID != due.ID {
			t.Errorf("FindDue() = %d rules, want only the open active one", len(rules))
		}
	})

	t.Run("an occurrence materializes once", func(t *testing.T) {
		db := newTestDB(t)
		repo := persistence.NewRecurringRuleRepository(db)
		owner := mustCreateUser(t, db, "owner", entity.RoleUser)
		rule := newRule(owner.ID, date(2024, 1, 31), nil)
		if err := repo.Create(ctx, rule); err != nil {
			t.Fatal(err)
		}

		today := date(2024, 2, 29)
		next := rule.FollowingExecution()
		if err := repo.Materialize(ctx, rule, rule.Materialize(today), next); err != nil {
			t.Fatalf("Materialize() error = %v", err)
		}
		err := repo.Materialize(ctx, rule, rule.Materialize(today), next)
		if !errors.Is(err, domainerror.ErrOccurrenceAlreadyMaterialized) {
			t.Errorf("second Materialize() error = %v, want ErrOccurrenceAlreadyMaterialized", err)
		}

		var count int64
		db.Model(&model.TransactionModel{}).Where("recurring_rule_id = ?", rule.ID).Count(&count)
		if count != 1 {
			t.Errorf("materialized rows = %d, want 1", count)
		}

		stored, err := repo.FindByID(ctx, rule.ID, &owner.ID)
		if err != nil {
			t.Fatal(err)
		}
		if !stored.NextExecution.Equal(date(2024, 3, 31)) {
			t.Errorf("NextExecution = %v, want 2024-03-31", stored.NextExecution)
		}
	})
}

func TestAnalyticsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := persistence.NewAnalyticsRepository(db)
	alice := mustCreateUser(t, db, "alice", entity.RoleUser)
	bob := mustCreateUser(t, db, "bob", entity.RoleUser)

	mustCreateTransaction(t, db, alice.ID, entity.TransactionTypeIncome, "Salary", "3000", date(2024, 3, 1))
	mustCreateTransaction(t, db, alice.ID, entity.TransactionTypeExpense, "Food", "120.40", date(2024, 3, 5))
	mustCreateTransaction(t, db, alice.ID, entity.TransactionTypeExpense, "Food", "79.60", date(2024, 3, 20))
	mustCreateTransaction(t, db, alice.ID, entity.TransactionTypeExpense, "Rent", "1000", date(2024, 2, 1))
	mustCreateTransaction(t, db, bob.ID, entity.TransactionTypeExpense, "Food", "5", date(2024, 3, 5))

	march := adapter.DateRange{From: ptr(date(2024, 3, 1)), To: ptr(date(2024, 4, 1))}

	t.Run("totals are scoped to owner and range", func(t *testing.T) {
		totals, err := repo.Totals(ctx, &alice.ID, march)
		if err != nil {
			t.Fatalf("Totals() error = %v", err)
		}
		if !totals.Income.Equal(decimal.NewFromInt(3000)) || !totals.Expense.Equal(decimal.NewFromInt(200)) {
			t.Errorf("totals = %+v", totals)
		}
		if totals.TransactionCount != 3 {
			t.Errorf("TransactionCount = %d, want 3", totals.TransactionCount)
		}
		if !totals.Net().Equal(decimal.NewFromInt(2800)) {
			t.Errorf("Net() = %s", totals.Net())
		}
	})

	t.Run("unrestricted totals span owners", func(t *testing.T) {
		totals, err := repo.Totals(ctx, nil, adapter.DateRange{})
		if err != nil {
			t.Fatalf("Totals() error = %v", err)
		}
		if !totals.Expense.Equal(decimal.NewFromInt(1205)) {
			t.Errorf("Expense = %s, want 1205", totals.Expense)
		}
	})

	t.Run("category breakdown largest first", func(t *testing.T) {
		breakdown, err := repo.CategoryBreakdown(ctx, &alice.ID, march)
		if err != nil {
			t.Fatalf("CategoryBreakdown() error = %v", err)
		}
		if len(breakdown) != 2 {
			t.Fatalf("len = %d, want 2", len(breakdown))
		}
		if breakdown[0].Category != "Salary" || breakdown[1].TransactionCount != 2 {
			t.Errorf("breakdown = %+v", breakdown)
		}
	})

	t.Run("amount points oldest first", func(t *testing.T) {
		points, err := repo.AmountPoints(ctx, &alice.ID, adapter.DateRange{})
		if err != nil {
			t.Fatalf("AmountPoints() error = %v", err)
		}
		if len(points) != 4 || !points[0].Date.Equal(date(2024, 2, 1)) {
			t.Errorf("points = %+v", points)
		}
	})
}

func TestDepartmentRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := persistence.NewDepartmentRepository(db)
	users := persistence.NewUserRepository(db)

	eng := entity.NewDepartment("Engineering", "", decimal.NewFromInt(5000), nil)
	if err := repo.Create(ctx, eng); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, entity.NewDepartment("Engineering", "", decimal.Zero, nil)); !errors.Is(err, domainerror.ErrDuplicateKey) {
		t.Errorf("duplicate Create() error = %v, want ErrDuplicateKey", err)
	}

	member := mustCreateUser(t, db, "member", entity.RoleUser)
	if err := users.AssignDepartment(ctx, member.ID, &eng.ID); err != nil {
		t.Fatalf("AssignDepartment() error = %v", err)
	}
	mustCreateTransaction(t, db, member.ID, entity.TransactionTypeExpense, "Hardware", "300", date(2024, 3, 1))
	mustCreateTransaction(t, db, member.ID, entity.TransactionTypeExpense, "Hardware", "200", date(2024, 3, 2))
	mustCreateTransaction(t, db, member.ID, entity.TransactionTypeIncome, "Salary", "900", date(2024, 3, 2))

	t.Run("members and spending", func(t *testing.T) {
		n, err := repo.CountMembers(ctx, eng.ID)
		if err != nil || n != 1 {
			t.Errorf("CountMembers() = %d, %v; want 1", n, err)
		}

		spending, err := repo.Spending(ctx, eng.ID)
		if err != nil {
			t.Fatalf("Spending() error = %v", err)
		}
		if len(spending) != 1 || !spending[0].Total.Equal(decimal.NewFromInt(500)) || spending[0].TransactionCount != 2 {
			t.Errorf("Spending() = %+v", spending)
		}
	})

	t.Run("delete detaches members", func(t *testing.T) {
		if err := repo.Delete(ctx, eng.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		got, err := users.FindByID(ctx, member.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.DepartmentID != nil {
			t.Errorf("DepartmentID = %v, want nil", got.DepartmentID)
		}
		if err := repo.Delete(ctx, eng.ID); !errors.Is(err, domainerror.ErrDepartmentNotFound) {
			t.Errorf("second Delete() error = %v, want ErrDepartmentNotFound", err)
		}
	})
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := persistence.NewAuditLogRepository(db)
	actor := uuid.New()

	entries := []*entity.AuditLogEntry{
		entity.NewAuditLogEntry(&actor, entity.AuditActionCreate, "transactions", "{}", "127.0.0.1"),
		entity.NewAuditLogEntry(&actor, entity.AuditActionCreate, "transactions", "{}", "127.0.0.1"),
		entity.NewAuditLogEntry(&actor, entity.AuditActionDelete, "budgets", "{}", "127.0.0.1"),
		entity.NewAuditLogEntry(nil, entity.AuditActionCreate, "auth", "{}", "127.0.0.1"),
	}
	for i, e := range entries {
		e.CreatedAt = e.CreatedAt.Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("list filters and pages newest first", func(t *testing.T) {
		result, err := repo.List(ctx, adapter.AuditLogFilter{UserID: &actor, Page: 1, Limit: 2})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if result.Total != 3 || result.TotalPages != 2 {
			t.Errorf("total=%d pages=%d", result.Total, result.TotalPages)
		}
		if result.Entries[0].Resource != "budgets" {
			t.Errorf("newest = %s, want budgets", result.Entries[0].Resource)
		}

		created, err := repo.List(ctx, adapter.AuditLogFilter{Action: entity.AuditActionCreate, Page: 1, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if created.Total != 3 {
			t.Errorf("create entries = %d, want 3", created.Total)
		}
	})

	t.Run("activity grouped by action and resource", func(t *testing.T) {
		activity, err := repo.ActivityByUser(ctx, actor)
		if err != nil {
			t.Fatalf("ActivityByUser() error = %v", err)
		}
		if len(activity) != 2 || activity[0].Count != 2 || activity[0].Resource != "transactions" {
			t.Errorf("activity = %+v", activity)
		}
	})
}

func TestInactiveRowsStayInactive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	owner := mustCreateUser(t, db, "owner", entity.RoleUser)

	t.Run("account", func(t *testing.T) {
		repo := persistence.NewAccountRepository(db)
		account := entity.NewAccount(owner.ID, "Closed", entity.AccountTypeChecking, decimal.Zero, "")
		account.IsActive = false
		if err := repo.Create(ctx, account); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		stored, err := repo.FindByID(ctx, account.ID, &owner.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if stored.IsActive {
			t.Error("IsActive = true, want false")
		}
	})

	t.Run("budget", func(t *testing.T) {
		repo := persistence.NewBudgetRepository(db)
		budget := entity.NewBudget(owner.ID, "Food", decimal.NewFromInt(100), entity.BudgetPeriodMonthly, "", date(2024, 3, 1), nil)
		budget.IsActive = false
		if err := repo.Create(ctx, budget); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		stored, err := repo.FindByID(ctx, budget.ID, &owner.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if stored.IsActive {
			t.Error("IsActive = true, want false")
		}
	})

	t.Run("recurring rule", func(t *testing.T) {
		repo := persistence.NewRecurringRuleRepository(db)
		rule := entity.NewRecurringRule(owner.ID, nil, entity.TransactionTypeExpense, "Gym", decimal.NewFromInt(30), "", "Gym", entity.FrequencyMonthly, date(2024, 1, 1), nil)
		rule.IsActive = false
		if err := repo.Create(ctx, rule); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		stored, err := repo.FindByID(ctx, rule.ID, &owner.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if stored.IsActive {
			t.Error("IsActive = true, want false")
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}
