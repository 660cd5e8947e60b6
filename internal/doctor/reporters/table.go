package reporters

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/smykla-skalski/klatka/internal/color"
	"github.com/smykla-skalski/klatka/internal/doctor"
)

// TableReporter renders check results as a bordered table, grouped by category.
type TableReporter struct {
	out   io.Writer
	theme color.Theme
}

// NewTableReporter creates a TableReporter writing to out with the given theme.
func NewTableReporter(out io.Writer, theme color.Theme) *TableReporter {
	return &TableReporter{
		out:   out,
		theme: theme,
	}
}

// Report renders the results table.
func (r *TableReporter) Report(results []doctor.CheckResult, verbose bool) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintln(r.out, RenderTable(results, verbose, r.theme))
}

// RenderTable builds a table from check results using tablewriter.
func RenderTable(results []doctor.CheckResult, verbose bool, theme color.Theme) string {
	headers := []string{"", "Check", "Message"}
	if verbose {
		headers = append(headers, "Details")
	}

	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header(headers)

	var lastCategory doctor.Category

	for _, result := range results {
		if result.Category != lastCategory {
			catRow := make([]string, len(headers))
			catRow[1] = theme.Header.Render(categoryName(result.Category))
			_ = t.Append(catRow)

			lastCategory = result.Category
		}

		row := []string{
			StyledIcon(result, theme),
			theme.CheckName.Render(result.Name),
			result.Message,
		}

		if verbose {
			row = append(row, strings.Join(result.Details, "; "))
		}

		_ = t.Append(row)
	}

	_ = t.Render()

	return strings.TrimRight(buf.String(), "\n")
}
