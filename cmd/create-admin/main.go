// Command create-admin seeds an administrator account.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/rbac-backend/config"
	"github.com/finance-tracker/rbac-backend/internal/application/usecase/auth"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	"github.com/finance-tracker/rbac-backend/internal/infra/db"
	"github.com/finance-tracker/rbac-backend/internal/integration/adapters"
	"github.com/finance-tracker/rbac-backend/internal/integration/persistence"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@finance.com", "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (defaults to ADMIN_PASSWORD)")
	flag.Parse()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if *password == "" {
		slog.Error("Password is required: pass -password or set ADMIN_PASSWORD")
		os.Exit(2)
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.MigrateAll(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	register := auth.NewRegisterUserUseCase(
		persistence.NewUserRepository(database.DB()),
		adapters.NewPasswordService(),
		adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	output, err := register.Execute(ctx, auth.RegisterUserInput{
		Username:   *username,
		Email:      *email,
		Password:   *password,
		Role:       entity.RoleAdmin.String(),
		AllowAdmin: true,
	})
	if err != nil {
		if de, ok := domainerror.As(err); ok && de.Kind == domainerror.KindConflict {
			slog.Warn("Admin user already exists", "username", *username, "email", *email)
		} else {
			slog.Error("Failed to create admin user", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("Admin user created",
		"id", output.User.ID,
		"username", output.User.Username,
		"email", output.User.Email,
	)
}
