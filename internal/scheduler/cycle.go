package scheduler

import "github.com/alexanderramin/drillrota/internal/domain"

// trackWriter appends statuses to a day-indexed track, stopping at the
// horizon. Days before zero are counted but not written.
type trackWriter struct {
	days    []domain.DayStatus
	day     int
	horizon int
}

func newTrackWriter(days []domain.DayStatus, start int) *trackWriter {
	return &trackWriter{days: days, day: start, horizon: len(days)}
}

func (w *trackWriter) done() bool {
	return w.day >= w.horizon
}

// emit writes status for up to n days. A non-positive n writes nothing.
func (w *trackWriter) emit(status domain.DayStatus, n int) {
	for i := 0; i < n && w.day < w.horizon; i++ {
		if w.day >= 0 {
			w.days[w.day] = status
		}
		w.day++
	}
}

// firstCycleDrilling is the drilling block of the first rotation, where
// induction takes part of the work block.
func firstCycleDrilling(cfg domain.ScheduleConfig) int {
	return max(cfg.WorkDays-cfg.InductionDays, 0)
}

// laterCycleDrilling is the drilling block after the first rotation; the
// Subida day takes one work-day slot.
func laterCycleDrilling(cfg domain.ScheduleConfig) int {
	return max(cfg.WorkDays-1, 0)
}

// generateCycle fills days[start:] with repeated rotations:
// S, I (first rotation only), P, B, D. Days before start are left alone.
func generateCycle(days []domain.DayStatus, start int, cfg domain.ScheduleConfig) {
	w := newTrackWriter(days, start)
	rest := cfg.RealRestDays()

	first := true
	for !w.done() {
		w.emit(domain.StatusSubida, 1)

		drilling := laterCycleDrilling(cfg)
		if first {
			w.emit(domain.StatusInduction, cfg.InductionDays)
			drilling = firstCycleDrilling(cfg)
		}

		w.emit(domain.StatusDrilling, drilling)
		w.emit(domain.StatusBajada, 1)
		w.emit(domain.StatusRest, rest)

		first = false
	}
}

// newTrack allocates a horizon-length track filled with Empty.
func newTrack(horizon int) []domain.DayStatus {
	days := make([]domain.DayStatus, max(horizon, 0))
	for i := range days {
		days[i] = domain.StatusEmpty
	}
	return days
}
