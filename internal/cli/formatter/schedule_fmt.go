package formatter

import (
	"strings"

	"github.com/alexanderramin/drillrota/internal/contract"
)

// FormatSchedule renders the full report: regime line, statistics, legend,
// violations and grid.
func FormatSchedule(resp *contract.ScheduleResponse, daysPerRow int) string {
	var b strings.Builder

	b.WriteString(RegimeLine(resp.Config) + "\n\n")
	b.WriteString(FormatStats(resp.Summary) + "\n\n")
	b.WriteString(Header("Legend") + "\n")
	b.WriteString(FormatLegend() + "\n\n")
	b.WriteString(Header("Violations") + "\n")
	b.WriteString(FormatViolations(resp.Groups) + "\n")
	b.WriteString(Header("Supervisor schedule") + "\n")
	b.WriteString(FormatGrid(resp.Result, daysPerRow))

	return b.String()
}
