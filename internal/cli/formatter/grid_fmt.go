package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// DefaultDaysPerRow is the grid block width used when none is configured.
const DefaultDaysPerRow = 30

const countRowLabel = "#P"

// FormatGrid renders the schedule as blocks of daysPerRow columns. Each block
// has a day header, one row per supervisor and a drilling-count row.
func FormatGrid(res domain.ScheduleResult, daysPerRow int) string {
	if res.TotalDays == 0 {
		return Dim("Empty schedule.") + "\n"
	}
	if daysPerRow <= 0 {
		daysPerRow = DefaultDaysPerRow
	}

	s3DrillStart := -1
	if len(res.Supervisors) >= 3 {
		s3DrillStart = res.Supervisors[2].FirstDayWith(domain.StatusDrilling)
	}

	cellWidth := len(strconv.Itoa(res.TotalDays-1)) + 1
	labelWidth := len("Day")
	for _, t := range res.Supervisors {
		labelWidth = max(labelWidth, len(t.ID))
	}

	var b strings.Builder
	for start := 0; start < res.TotalDays; start += daysPerRow {
		end := min(start+daysPerRow, res.TotalDays)
		if start > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(DayRange(start, end-1)) + "\n")

		b.WriteString(Dim(padRight("Day", labelWidth)))
		for day := start; day < end; day++ {
			b.WriteString(Dim(padLeft(strconv.Itoa(day), cellWidth)))
		}
		b.WriteString("\n")

		for _, t := range res.Supervisors {
			b.WriteString(Bold(padRight(t.ID, labelWidth)))
			for day := start; day < end; day++ {
				s := t.StatusAt(day)
				b.WriteString(StatusStyle(s).Render(padLeft(string(s), cellWidth)))
			}
			b.WriteString("\n")
		}

		b.WriteString(Bold(padRight(countRowLabel, labelWidth)))
		for day := start; day < end; day++ {
			c := res.DrillingCount[day]
			style := CountStyle(ClassifyCount(c, day, s3DrillStart))
			b.WriteString(style.Render(padLeft(strconv.Itoa(c), cellWidth)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padLeft(s string, w int) string {
	return fmt.Sprintf("%*s", w, s)
}

func padRight(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}
