// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/finance-tracker/rbac-backend/config"
	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/application/cache"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/account"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/admin"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/analytics"
	auditusecase "github.com/finance-tracker/rbac-backend/internal/application/usecase/audit"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/auth"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/budget"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/department"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/goal"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/recurring"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/report"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/user"
	"github.com/finance-tracker/rbac-backend/internal/infra/server/router"
	"github.com/finance-tracker/rbac-backend/internal/integration/adapters"
	"github.com/finance-tracker/rbac-backend/internal/integration/audit"
	"github.com/finance-tracker/rbac-backend/internal/integration/cachestore"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Cache    *cache.Cache
	Recorder *audit.Recorder
	Router   *router.Router

	RateLimiters []*middleware.RateLimiter
}

// Options carries the runtime collaborators that differ between the server
// binary and tests.
type Options struct {
	Store    adapter.CacheStore
	Clock    adapter.Clock
	DBHealth func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	store := opts.Store
	if store == nil {
		store = cachestore.NewNoopStore()
	}
	clock := opts.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	dbHealth := opts.DBHealth
	if dbHealth == nil {
		dbHealth = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}

	c := cache.New(store, cache.TTLPolicy{
		Aggregate: cfg.Cache.AggregateTTL,
		List:      cfg.Cache.ListTTL,
	})

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	departmentRepo := persistence.NewDepartmentRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	ruleRepo := persistence.NewRecurringRuleRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)
	auditRepo := persistence.NewAuditLogRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	recorder := audit.NewRecorder(auditRepo, audit.RecorderConfig{
		BufferSize:   cfg.Audit.BufferSize,
		WriteTimeout: cfg.Audit.WriteTimeout,
	})

	// Create use cases
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, c)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo, c, clock)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(dbHealth, store.Ping),
		Auth: controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewGetProfileUseCase(userRepo),
		),
		Account: controller.NewAccountController(
			account.NewListAccountsUseCase(accountRepo, c),
			account.NewGetAccountSummaryUseCase(accountRepo),
			account.NewCreateAccountUseCase(accountRepo, c),
			account.NewUpdateAccountUseCase(accountRepo, c),
			account.NewDeleteAccountUseCase(accountRepo, c),
		),
		Transaction: controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewGetTransactionUseCase(transactionRepo),
			transaction.NewListCategoriesUseCase(transactionRepo),
			transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, c, clock),
			transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, c),
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			budget.NewListBudgetAlertsUseCase(listBudgetsUseCase),
			budget.NewCreateBudgetUseCase(budgetRepo, c, clock),
			budget.NewUpdateBudgetUseCase(budgetRepo, c),
			budget.NewDeleteBudgetUseCase(budgetRepo, c),
		),
		Goal: controller.NewGoalController(
			goal.NewListGoalsUseCase(goalRepo, c, clock),
			goal.NewGetGoalSummaryUseCase(goalRepo),
			goal.NewCreateGoalUseCase(goalRepo, c, clock),
			goal.NewUpdateGoalUseCase(goalRepo, c, clock),
			goal.NewAddGoalProgressUseCase(goalRepo, c, clock),
			goal.NewDeleteGoalUseCase(goalRepo, c),
		),
		Recurring: controller.NewRecurringController(
			recurring.NewListRulesUseCase(ruleRepo),
			recurring.NewCreateRuleUseCase(ruleRepo, accountRepo, c),
			recurring.NewUpdateRuleUseCase(ruleRepo, accountRepo, c),
			recurring.NewDeleteRuleUseCase(ruleRepo, c),
			recurring.NewProcessDueUseCase(ruleRepo, c, clock),
		),
		Analytics: controller.NewAnalyticsController(
			analytics.NewGetAnalyticsUseCase(analyticsRepo, c, clock),
			analytics.NewGetDashboardUseCase(analyticsRepo, transactionRepo, c, clock),
		),
		Report: controller.NewReportController(
			report.NewGetFinancialReportUseCase(analyticsRepo, accountRepo, clock),
			report.NewGetTaxReportUseCase(analyticsRepo, clock),
			report.NewGetBudgetReportUseCase(budgetRepo, transactionRepo, clock),
		),
		Admin: controller.NewAdminController(
			admin.NewListAllTransactionsUseCase(transactionRepo),
			deleteTransactionUseCase,
			admin.NewGetStatsUseCase(userRepo, analyticsRepo),
		),
		User: controller.NewUserController(
			user.NewListUsersUseCase(userRepo),
			user.NewUpdateRoleUseCase(userRepo),
			user.NewDeleteUserUseCase(userRepo, c),
		),
		Department: controller.NewDepartmentController(
			department.NewListDepartmentsUseCase(departmentRepo, c),
			department.NewCreateDepartmentUseCase(departmentRepo, userRepo, c),
			department.NewUpdateDepartmentUseCase(departmentRepo, userRepo, c),
			department.NewDeleteDepartmentUseCase(departmentRepo, c),
			department.NewGetBudgetAnalysisUseCase(departmentRepo),
			department.NewAssignUserUseCase(departmentRepo, userRepo),
		),
		Audit: controller.NewAuditController(
			auditusecase.NewListLogsUseCase(auditRepo),
			auditusecase.NewGetUserActivityUseCase(auditRepo),
		),
	}

	// Create middleware
	authRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.AuthMax,
		cfg.RateLimit.AuthWindow,
		"Too many authentication attempts, please try again later.",
		cfg.RateLimit.Enabled,
	)
	analyticsRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.AnalyticsMax,
		cfg.RateLimit.AnalyticsWindow,
		"Too many analytics requests, please try again later.",
		cfg.RateLimit.Enabled,
	)
	middlewares := router.Middlewares{
		Auth:                 middleware.NewAuthMiddleware(tokenService),
		Audit:                middleware.NewAuditMiddleware(recorder, router.APIPrefix),
		AuthRateLimiter:      authRateLimiter,
		AnalyticsRateLimiter: analyticsRateLimiter,
	}

	return &Injector{
		Config:       cfg,
		DB:           db,
		Cache:        c,
		Recorder:     recorder,
		Router:       router.NewRouter(controllers, middlewares),
		RateLimiters: []*middleware.RateLimiter{authRateLimiter, analyticsRateLimiter},
	}
}

// CleanupRateLimiters drops idle clients from every limiter.
func (i *Injector) CleanupRateLimiters() {
	for _, rl := range i.RateLimiters {
		rl.Cleanup()
	}
}
