package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the cell style for a day status.
func StatusStyle(s domain.DayStatus) lipgloss.Style {
	switch s {
	case domain.StatusSubida:
		return StyleBlue
	case domain.StatusInduction:
		return StylePurple
	case domain.StatusDrilling:
		return lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	case domain.StatusBajada:
		return StyleYellow
	case domain.StatusRest:
		return lipgloss.NewStyle().Foreground(ColorAqua)
	default:
		return StyleDim
	}
}

// CountClass classifies a drilling-count cell in the grid.
type CountClass int

const (
	CountValid CountClass = iota
	CountWarning
	CountError
)

// ClassifyCount grades the number of drillers on day. Fewer than two is a
// warning until S3 starts drilling and an error afterwards. A negative
// s3DrillStart (S3 never drills) makes every short day an error.
func ClassifyCount(count, day, s3DrillStart int) CountClass {
	switch {
	case count > 2:
		return CountError
	case count < 2 && day >= s3DrillStart:
		return CountError
	case count < 2:
		return CountWarning
	default:
		return CountValid
	}
}

// CountStyle returns the style for a count class.
func CountStyle(c CountClass) lipgloss.Style {
	switch c {
	case CountError:
		return StyleRed.Bold(true)
	case CountWarning:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
