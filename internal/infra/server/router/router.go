// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/rbac-backend/internal/integration/entrypoint/middleware"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/api/v1"

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Account     *controller.AccountController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Recurring   *controller.RecurringController
	Analytics   *controller.AnalyticsController
	Report      *controller.ReportController
	Admin       *controller.AdminController
	User        *controller.UserController
	Department  *controller.DepartmentController
	Audit       *controller.AuditController
}

// Middlewares groups the stateful middleware instances.
type Middlewares struct {
	Auth                 *middleware.AuthMiddleware
	Audit                *middleware.AuditMiddleware
	AuthRateLimiter      *middleware.RateLimiter
	AnalyticsRateLimiter *middleware.RateLimiter
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine      *gin.Engine
	controllers Controllers
	middlewares Middlewares
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, middlewares Middlewares) *Router {
	return &Router{
		controllers: controllers,
		middlewares: middlewares,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// protected is the chain every authenticated route runs through. Role checks
// are appended per route.
func (r *Router) protected() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		r.middlewares.Auth.Authenticate(),
		middleware.Sanitize(),
		middleware.Scope(),
		r.middlewares.Audit.Record(),
		middleware.ReadOnlyGate(),
	}
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	writers := middleware.RequireRoles(entity.RoleAdmin, entity.RoleUser)
	adminOnly := middleware.RequireRoles(entity.RoleAdmin)

	v1 := r.engine.Group(APIPrefix)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.middlewares.AuthRateLimiter.Middleware(), middleware.Sanitize(), c.Auth.Register)
		auth.POST("/login", r.middlewares.AuthRateLimiter.Middleware(), middleware.Sanitize(), c.Auth.Login)
		auth.GET("/profile", append(r.protected(), c.Auth.Profile)...)
	}

	accounts := v1.Group("/accounts", r.protected()...)
	{
		accounts.GET("", c.Account.List)
		accounts.GET("/summary", c.Account.Summary)
		accounts.POST("", writers, c.Account.Create)
		accounts.PUT("/:id", writers, c.Account.Update)
		accounts.DELETE("/:id", writers, c.Account.Delete)
	}

	transactions := v1.Group("/transactions", r.protected()...)
	{
		transactions.GET("", c.Transaction.List)
		transactions.GET("/categories", c.Transaction.Categories)
		transactions.GET("/:id", c.Transaction.Get)
		transactions.POST("", writers, c.Transaction.Create)
		transactions.PUT("/:id", writers, c.Transaction.Update)
		transactions.DELETE("/:id", writers, c.Transaction.Delete)
	}

	budgets := v1.Group("/budgets", r.protected()...)
	{
		budgets.GET("", c.Budget.List)
		budgets.GET("/alerts", c.Budget.Alerts)
		budgets.POST("", writers, c.Budget.Create)
		budgets.PUT("/:id", writers, c.Budget.Update)
		budgets.DELETE("/:id", writers, c.Budget.Delete)
	}

	goals := v1.Group("/goals", r.protected()...)
	{
		goals.GET("", c.Goal.List)
		goals.GET("/summary", c.Goal.Summary)
		goals.POST("", writers, c.Goal.Create)
		goals.PUT("/:id", writers, c.Goal.Update)
		goals.PUT("/:id/progress", writers, c.Goal.AddProgress)
		goals.DELETE("/:id", writers, c.Goal.Delete)
	}

	recurring := v1.Group("/recurring", r.protected()...)
	{
		recurring.GET("", c.Recurring.List)
		recurring.POST("", writers, c.Recurring.Create)
		recurring.POST("/process", adminOnly, c.Recurring.Process)
		recurring.PUT("/:id", writers, c.Recurring.Update)
		recurring.DELETE("/:id", writers, c.Recurring.Delete)
	}

	analytics := v1.Group("/analytics", append(r.protected(), r.middlewares.AnalyticsRateLimiter.Middleware())...)
	{
		analytics.GET("", c.Analytics.Get)
		analytics.GET("/dashboard", c.Analytics.Dashboard)
	}

	reports := v1.Group("/reports", r.protected()...)
	{
		reports.GET("/financial", c.Report.Financial)
		reports.GET("/tax", c.Report.Tax)
		reports.GET("/budget", c.Report.Budget)
	}

	adminGroup := v1.Group("/admin", append(r.protected(), adminOnly)...)
	{
		adminGroup.GET("/transactions", c.Admin.ListTransactions)
		adminGroup.DELETE("/transactions/:id", c.Admin.DeleteTransaction)
		adminGroup.GET("/stats", c.Admin.Stats)
	}

	users := v1.Group("/users", append(r.protected(), adminOnly)...)
	{
		users.GET("", c.User.List)
		users.PUT("/:id/role", c.User.UpdateRole)
		users.DELETE("/:id", c.User.Delete)
	}

	departments := v1.Group("/departments", r.protected()...)
	{
		departments.GET("", c.Department.List)
		departments.POST("", adminOnly, c.Department.Create)
		departments.PUT("/:id", adminOnly, c.Department.Update)
		departments.DELETE("/:id", adminOnly, c.Department.Delete)
		departments.GET("/:id/budget-analysis", adminOnly, c.Department.BudgetAnalysis)
		departments.PUT("/:id/users/:user_id", adminOnly, c.Department.AssignUser)
	}

	audit := v1.Group("/audit", append(r.protected(), adminOnly)...)
	{
		audit.GET("/logs", c.Audit.ListLogs)
		audit.GET("/users/:id/activity", c.Audit.UserActivity)
	}
}
