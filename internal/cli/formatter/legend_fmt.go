package formatter

import (
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// FormatLegend renders every status letter with its label on one line.
func FormatLegend() string {
	parts := make([]string, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		parts = append(parts, StatusStyle(s).Render(string(s))+" "+Dim(s.Label()))
	}
	return strings.Join(parts, "   ")
}
