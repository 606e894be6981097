package error

import "errors"

// Report and analytics errors.
var (
	// ErrInvalidPeriod is returned when an analytics period is unknown.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidReportRange is returned when report dates are missing or reversed.
	ErrInvalidReportRange = errors.New("invalid report range")

	// ErrInvalidYear is returned when a tax year cannot be parsed.
	ErrInvalidYear = errors.New("invalid year")
)

const (
	ErrCodeInvalidPeriod      Code = "RPT-010001"
	ErrCodeInvalidReportRange Code = "RPT-010002"
	ErrCodeInvalidYear        Code = "RPT-010003"
	ErrCodeInvalidQuery       Code = "RPT-010004"
)
