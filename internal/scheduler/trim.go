package scheduler

import "github.com/alexanderramin/drillrota/internal/domain"

// concurrentDrillers is the steady-state number of drillers the trim target
// assumes.
const concurrentDrillers = 2

// trimLength walks the tracks from day 0 and returns the day after the one
// on which accumulated drilling person-days reach target*2. If the target is
// never reached it returns the full track length.
func trimLength(tracks [][]domain.DayStatus, target int) int {
	if len(tracks) == 0 {
		return 0
	}

	goal := target * concurrentDrillers
	accumulated := 0
	trimmed := 0
	for day := range tracks[0] {
		accumulated += drillersOn(tracks, day)
		trimmed = day + 1
		if accumulated >= goal {
			break
		}
	}
	return trimmed
}

// finalHorizon never returns less than the pre-estimate.
func finalHorizon(trimmed int, cfg domain.ScheduleConfig) int {
	return max(trimmed, cfg.EstimatedHorizon(), 0)
}

func drillersOn(tracks [][]domain.DayStatus, day int) int {
	n := 0
	for _, t := range tracks {
		if day < len(t) && t[day] == domain.StatusDrilling {
			n++
		}
	}
	return n
}
