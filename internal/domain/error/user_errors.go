package error

import "errors"

// User administration errors.
var (
	// ErrCannotDeleteSelf is returned when an admin tries to delete their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

const (
	ErrCodeCannotDeleteSelf Code = "USR-010001"
	ErrCodeInvalidUserID    Code = "USR-010002"
)
