// Package reporters formats doctor check results for terminal output.
package reporters

import (
	"github.com/smykla-skalski/klatka/internal/color"
	"github.com/smykla-skalski/klatka/internal/doctor"
)

// StatusIcon returns a single-width character icon for a check result.
// These are used inside tables where emoji would break column alignment.
func StatusIcon(result doctor.CheckResult) string {
	switch result.Status {
	case doctor.StatusPass:
		return "✓"
	case doctor.StatusFail:
		if result.Severity == doctor.SeverityError {
			return "✗"
		}

		return "!"
	case doctor.StatusSkipped:
		return "-"
	default:
		return "?"
	}
}

// StyledIcon returns a StatusIcon colored by the theme.
func StyledIcon(result doctor.CheckResult, theme color.Theme) string {
	icon := StatusIcon(result)

	switch result.Status {
	case doctor.StatusPass:
		return theme.Pass.Render(icon)
	case doctor.StatusFail:
		if result.Severity == doctor.SeverityError {
			return theme.Fail.Render(icon)
		}

		return theme.Warning.Render(icon)
	case doctor.StatusSkipped:
		return theme.Skip.Render(icon)
	default:
		return icon
	}
}

// categoryName maps a doctor category to a section heading.
func categoryName(category doctor.Category) string {
	switch category {
	case doctor.CategoryDocker:
		return "Docker"
	case doctor.CategoryHook:
		return "Hook"
	case doctor.CategoryConfig:
		return "Configuration"
	case doctor.CategoryLog:
		return "Logging"
	default:
		return string(category)
	}
}
