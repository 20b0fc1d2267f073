// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/devcomment/internal/ui/styles"
)

// RenderTable lays rows out in borderless, aligned columns under a bold
// header. Rows for which dim returns true are rendered muted; dim may be nil.
// The last column is not padded so lines carry no trailing spaces.
func RenderTable(headers []string, rows [][]string, dim func(row []string) bool) string {
	if len(rows) == 0 {
		return ""
	}

	last := len(headers) - 1

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if col != last {
				style = style.PaddingRight(2)
			}
			switch {
			case row == table.HeaderRow:
				style = style.Bold(true)
			case dim != nil && row >= 0 && row < len(rows) && dim(rows[row]):
				style = style.Foreground(styles.Muted)
			}
			return style
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}
