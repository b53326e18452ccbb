package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RegimeLine renders "Regime 14x7 | 5 induction days".
func RegimeLine(cfg domain.ScheduleConfig) string {
	return fmt.Sprintf("%s %s %s %s",
		Dim("Regime"),
		Bold(cfg.Regime()),
		Dim("|"),
		StyleFg.Render(fmt.Sprintf("%d induction days", cfg.InductionDays)),
	)
}

// DayRange renders an inclusive day range label such as "Days 0 - 29".
func DayRange(start, end int) string {
	return fmt.Sprintf("Days %d - %d", start, end)
}

// Pluralize returns singular when n is 1, plural otherwise.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
