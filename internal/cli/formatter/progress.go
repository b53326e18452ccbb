package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Coverage thresholds for bar color.
const (
	coverageGood = 0.9
	coverageFair = 0.7
)

// RenderProgress renders a share bar like [████░░░░]  45%. pct is clamped to
// [0, 1] and width to at least 2. Green from 90%, yellow from 70%, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)

	style := StyleRed
	switch {
	case pct >= coverageGood:
		style = StyleGreen
	case pct >= coverageFair:
		style = StyleYellow
	}

	var bar strings.Builder
	bar.WriteString(strings.Repeat(filledBlock, filled))
	bar.WriteString(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar.String()), pct*100)
}
