package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/contract"
)

const coverageBarWidth = 20

// FormatStats renders the statistics panel.
func FormatStats(sum contract.ScheduleSummary) string {
	violations := StyleGreen.Render("0")
	if sum.ViolationCount > 0 {
		violations = StyleRed.Render(fmt.Sprintf("%d", sum.ViolationCount))
	}

	s3Entry := Dim("--")
	if sum.S3FirstActiveDay >= 0 {
		s3Entry = StyleFg.Render(fmt.Sprintf("day %d", sum.S3FirstActiveDay))
	}

	share := 0.0
	if sum.TotalDays > 0 {
		share = float64(sum.ValidDays) / float64(sum.TotalDays)
	}

	rows := [][]string{
		{"Total days", Bold(fmt.Sprintf("%d", sum.TotalDays))},
		{"Drilling person-days", StyleGreen.Render(fmt.Sprintf("%d", sum.DrillingPersonDays))},
		{"Valid days (2P)", StyleGreen.Render(fmt.Sprintf("%d", sum.ValidDays))},
		{"Violations", violations},
		{"S3 enters", s3Entry},
		{"Drillers per day", StyleFg.Render(fmt.Sprintf("%.2f ± %.2f", sum.MeanDrillers, sum.StdDevDrillers))},
		{"2P coverage", RenderProgress(share, coverageBarWidth)},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(Dim(padRight(r[0], len("Drilling person-days"))) + "  " + r[1] + "\n")
	}
	return RenderBox("Statistics", strings.TrimRight(b.String(), "\n"))
}
