package scheduler

import (
	"fmt"

	"github.com/alexanderramin/drillrota/internal/domain"
)

const maxDrillers = 2

// scanViolations inspects every day of the horizon. Coverage violations for
// a day come before that day's pattern violations; pattern violations are
// reported per supervisor in track order.
func scanViolations(tracks []domain.SupervisorTrack, counts []int, coverageStart int) []domain.Violation {
	out := make([]domain.Violation, 0)

	for day, count := range counts {
		if count > maxDrillers {
			out = append(out, domain.Violation{
				Day:     day,
				Kind:    domain.ViolationTooMany,
				Message: fmt.Sprintf("Day %d: %d supervisors drilling (max %d)", day, count, maxDrillers),
			})
		}

		if count == 1 && day >= coverageStart {
			out = append(out, domain.Violation{
				Day:     day,
				Kind:    domain.ViolationTooFew,
				Message: fmt.Sprintf("Day %d: only 1 supervisor drilling (min %d)", day, maxDrillers),
			})
		}

		for _, t := range tracks {
			if v, ok := patternViolation(t, day); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// patternViolation checks the (day, day+1) pair of a track. A Subida must be
// followed by induction or drilling.
func patternViolation(t domain.SupervisorTrack, day int) (domain.Violation, bool) {
	if day >= len(t.Days)-1 || t.Days[day] != domain.StatusSubida {
		return domain.Violation{}, false
	}

	var msg string
	switch t.Days[day+1] {
	case domain.StatusSubida:
		msg = fmt.Sprintf("%s day %d: invalid S-S pattern", t.ID, day)
	case domain.StatusBajada:
		msg = fmt.Sprintf("%s day %d: invalid S-B pattern (no drilling)", t.ID, day)
	default:
		return domain.Violation{}, false
	}

	return domain.Violation{
		Day:        day,
		Kind:       domain.ViolationInvalidPattern,
		Supervisor: t.ID,
		Message:    msg,
	}, true
}
