// Package doctor provides health check and diagnostics functionality for klatka.
package doctor

import "context"

// Severity represents the severity level of a check result
type Severity string

const (
	// SeverityError indicates a blocking error that must be fixed
	SeverityError Severity = "error"
	// SeverityWarning indicates a non-blocking warning that should be fixed
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates informational output
	SeverityInfo Severity = "info"
)

// Status represents the status of a health check
type Status string

const (
	// StatusPass indicates the check passed
	StatusPass Status = "pass"
	// StatusFail indicates the check failed
	StatusFail Status = "fail"
	// StatusSkipped indicates the check was skipped
	StatusSkipped Status = "skipped"
)

// Category represents the category of a health check
type Category string

const (
	// CategoryDocker checks docker availability and version
	CategoryDocker Category = "docker"
	// CategoryHook checks hook registration in Claude settings
	CategoryHook Category = "hook"
	// CategoryConfig checks configuration file validity
	CategoryConfig Category = "config"
	// CategoryLog checks log file health
	CategoryLog Category = "log"
)

// CheckResult represents the result of a health check
type CheckResult struct {
	// Name is the human-readable name of the check
	Name string

	// Category indicates the category this check belongs to
	Category Category

	// Severity indicates the severity level
	Severity Severity

	// Status indicates whether the check passed, failed, or was skipped
	Status Status

	// Message is the primary message describing the result
	Message string

	// Details contains additional context about the result
	Details []string
}

// HealthChecker performs a health check and returns a result
type HealthChecker interface {
	// Name returns the human-readable name of the check
	Name() string

	// Category returns the category this check belongs to
	Category() Category

	// Check performs the health check and returns a result
	Check(ctx context.Context) CheckResult
}

// Reporter formats and outputs check results
type Reporter interface {
	// Report outputs the results of health checks
	Report(results []CheckResult, verbose bool)
}

// WithDetails adds details to a CheckResult
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(r.Details, details...)
	return r
}

// Pass creates a passing check result
func Pass(name, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Severity: SeverityInfo,
		Status:   StatusPass,
		Message:  message,
	}
}

// FailError creates a failing check result with error severity
func FailError(name, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Severity: SeverityError,
		Status:   StatusFail,
		Message:  message,
	}
}

// FailWarning creates a failing check result with warning severity
func FailWarning(name, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Severity: SeverityWarning,
		Status:   StatusFail,
		Message:  message,
	}
}

// Skip creates a skipped check result
func Skip(name, message string) CheckResult {
	return CheckResult{
		Name:     name,
		Severity: SeverityInfo,
		Status:   StatusSkipped,
		Message:  message,
	}
}
