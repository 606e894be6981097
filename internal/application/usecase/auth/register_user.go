// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/finance-tracker/rbac-backend/internal/application/adapter"
	"github.com/finance-tracker/rbac-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/rbac-backend/internal/domain/error"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput represents the input for user registration.
// An empty Role registers a regular user. The admin role is only granted
// when AllowAdmin is set, which operator tooling does and HTTP never does.
type RegisterUserInput struct {
	Username   string
	Email      string
	Password   string
	Role       string
	AllowAdmin bool
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Token string
	User  *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerror.Validation(
			domainerror.ErrCodeMissingFields,
			"username, email and password are required",
			nil,
		)
	}

	if n := len([]rune(username)); n < minUsernameLength || n > maxUsernameLength {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidUsername,
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength),
			domainerror.ErrInvalidUsername,
		)
	}

	if !emailRegex.MatchString(email) {
		return nil, domainerror.Validation(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.Validation(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 6 characters long",
			domainerror.ErrWeakPassword,
		)
	}

	role := entity.RoleUser
	if input.Role != "" {
		parsed, ok := entity.ParseRole(input.Role)
		if !ok {
			return nil, domainerror.Validation(
				domainerror.ErrCodeInvalidRole,
				"role must be one of admin, user, read-only",
				domainerror.ErrInvalidRole,
			)
		}
		role = parsed
	}
	if role == entity.RoleAdmin && !input.AllowAdmin {
		return nil, domainerror.New(
			domainerror.KindForbidden,
			domainerror.ErrCodeAdminSignup,
			"Admin accounts cannot be self-registered",
			domainerror.ErrAdminSelfRegistration,
		)
	}

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, userExists()
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, email, passwordHash, role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateKey) {
			return nil, userExists()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.Issue(ctx, user.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterUserOutput{
		Token: token,
		User:  user,
	}, nil
}

func userExists() error {
	return domainerror.New(
		domainerror.KindConflict,
		domainerror.ErrCodeUserExists,
		"User already exists",
		domainerror.ErrUserAlreadyExists,
	)
}
