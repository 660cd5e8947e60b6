package reporters

import (
	"fmt"
	"io"

	"github.com/smykla-skalski/klatka/internal/color"
	"github.com/smykla-skalski/klatka/internal/doctor"
)

// SimpleReporter prints one line per check, suitable for non-TTY output.
type SimpleReporter struct {
	out   io.Writer
	theme color.Theme
}

// NewSimpleReporter creates a SimpleReporter writing to out with the given theme.
func NewSimpleReporter(out io.Writer, theme color.Theme) *SimpleReporter {
	return &SimpleReporter{
		out:   out,
		theme: theme,
	}
}

// Report prints every result, category headings included.
func (r *SimpleReporter) Report(results []doctor.CheckResult, verbose bool) {
	var lastCategory doctor.Category

	for _, result := range results {
		if result.Category != lastCategory {
			fmt.Fprintln(r.out, r.theme.Header.Render(categoryName(result.Category)))

			lastCategory = result.Category
		}

		fmt.Fprintf(r.out, "  %s %s: %s\n", StyledIcon(result, r.theme), result.Name, result.Message)

		if verbose {
			for _, detail := range result.Details {
				fmt.Fprintf(r.out, "      %s\n", r.theme.Muted.Render(detail))
			}
		}
	}
}
