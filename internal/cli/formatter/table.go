package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the space between table columns.
const colGap = 2

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableAligned(headers, rows, nil)
}

// RenderTableAligned renders a table whose columns are padded to their
// widest visible cell. Columns flagged in rightAlign are right-aligned.
// Widths are measured with lipgloss so styled cells line up.
func RenderTableAligned(headers []string, rows [][]string, rightAlign []bool) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	right := func(i int) bool {
		return i < len(rightAlign) && rightAlign[i]
	}

	var b strings.Builder
	writeRow := func(cells []string, render func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
			last := i == cols-1
			switch {
			case right(i):
				b.WriteString(pad + render(cell))
			case last:
				b.WriteString(render(cell))
			default:
				b.WriteString(render(cell) + pad)
			}
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
