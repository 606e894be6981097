package error

import "errors"

// Department domain errors.
var (
	// ErrDepartmentNotFound is returned when a department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrDepartmentExists is returned when the department name is taken.
	ErrDepartmentExists = errors.New("department already exists")

	// ErrInvalidDepartmentName is returned when the name is empty or too long.
	ErrInvalidDepartmentName = errors.New("invalid department name")
)

const (
	ErrCodeDepartmentNotFound    Code = "DEP-010001"
	ErrCodeDepartmentExists      Code = "DEP-010002"
	ErrCodeInvalidDepartmentName Code = "DEP-010003"
	ErrCodeInvalidDepartmentData Code = "DEP-010004"
)
