package scheduler

import (
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// track converts a compact string such as "SIIPPB-" into statuses.
func track(s string) []domain.DayStatus {
	days := make([]domain.DayStatus, 0, len(s))
	for _, r := range s {
		days = append(days, domain.DayStatus(string(r)))
	}
	return days
}

// compact is the inverse of track.
func compact(days []domain.DayStatus) string {
	var b strings.Builder
	for _, d := range days {
		b.WriteString(string(d))
	}
	return b.String()
}
