package error

import "errors"

// Authentication and access domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email or username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid, malformed or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUsername is returned when the username length is out of range.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidRole is returned when a role name is unknown.
	ErrInvalidRole = errors.New("invalid role")

	// ErrAdminSelfRegistration is returned when a public registration asks for
	// the admin role.
	ErrAdminSelfRegistration = errors.New("admin accounts cannot be self-registered")

	// ErrReadOnly is returned when a read-only caller attempts a mutation.
	ErrReadOnly = errors.New("read-only users cannot modify data")

	// ErrInsufficientRole is returned when the caller's role is not allowed.
	ErrInsufficientRole = errors.New("insufficient permissions")
)

const (
	// Registration errors (01XXXX)
	ErrCodeUserExists      Code = "AUTH-010001"
	ErrCodeWeakPassword    Code = "AUTH-010002"
	ErrCodeInvalidEmail    Code = "AUTH-010003"
	ErrCodeInvalidUsername Code = "AUTH-010004"
	ErrCodeInvalidRole     Code = "AUTH-010005"
	ErrCodeMissingFields   Code = "AUTH-010006"
	ErrCodeAdminSignup     Code = "AUTH-010007"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials Code = "AUTH-020001"
	ErrCodeUserNotFound       Code = "AUTH-020002"
	ErrCodeRateLimited        Code = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken Code = "AUTH-030001"
	ErrCodeMissingToken Code = "AUTH-030002"

	// Access errors (04XXXX)
	ErrCodeReadOnly         Code = "AUTH-040001"
	ErrCodeInsufficientRole Code = "AUTH-040002"
	ErrCodeNoRole           Code = "AUTH-040003"
)
