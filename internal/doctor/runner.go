package doctor

import "context"

// Runner executes a set of health checks in order.
type Runner struct {
	checkers []HealthChecker
}

// NewRunner creates a Runner over the given checkers.
func NewRunner(checkers ...HealthChecker) *Runner {
	return &Runner{checkers: checkers}
}

// Run executes every check and returns the results in checker order.
func (r *Runner) Run(ctx context.Context) []CheckResult {
	results := make([]CheckResult, 0, len(r.checkers))

	for _, checker := range r.checkers {
		result := checker.Check(ctx)
		result.Category = checker.Category()

		results = append(results, result)
	}

	return results
}

// HasErrors reports whether any result failed with error severity.
func HasErrors(results []CheckResult) bool {
	for _, result := range results {
		if result.Status == StatusFail && result.Severity == SeverityError {
			return true
		}
	}

	return false
}
