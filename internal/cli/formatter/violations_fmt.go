package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/alexanderramin/drillrota/internal/domain"
)

// MaxViolationsPerGroup caps how many messages each group lists.
const MaxViolationsPerGroup = 10

// FormatViolations renders violations grouped by kind. Empty groups are
// skipped; with no violations at all it renders a valid-schedule notice.
func FormatViolations(groups []contract.ViolationGroup) string {
	total := 0
	for _, g := range groups {
		total += len(g.Violations)
	}
	if total == 0 {
		return StyleGreen.Render("✔ Valid schedule") + "\n" +
			Dim("  No rule violations found.") + "\n"
	}

	var b strings.Builder
	for _, g := range groups {
		if len(g.Violations) == 0 {
			continue
		}
		style := StyleRed
		if g.Kind == domain.ViolationInvalidPattern {
			style = StyleYellow
		}

		b.WriteString(style.Render(groupTitle(g.Kind, len(g.Violations))) + "\n")
		shown := min(len(g.Violations), MaxViolationsPerGroup)
		for _, v := range g.Violations[:shown] {
			b.WriteString("  " + style.Render("•") + " " + v.Message + "\n")
		}
		if rest := len(g.Violations) - shown; rest > 0 {
			b.WriteString(Dim(fmt.Sprintf("  ...and %d more", rest)) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func groupTitle(kind domain.ViolationKind, n int) string {
	switch kind {
	case domain.ViolationTooMany:
		return fmt.Sprintf("✖ 3 supervisors drilling (%d %s)", n, Pluralize(n, "day", "days"))
	case domain.ViolationTooFew:
		return fmt.Sprintf("▲ Only 1 supervisor drilling (%d %s)", n, Pluralize(n, "day", "days"))
	case domain.ViolationInvalidPattern:
		return fmt.Sprintf("▲ Invalid patterns (%d)", n)
	default:
		return fmt.Sprintf("%s (%d)", kind, n)
	}
}
