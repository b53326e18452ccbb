package scheduler

import "github.com/alexanderramin/drillrota/internal/domain"

// lookaheadDays bounds how far S2 looks at S1's track when deciding to cut
// its rest short. Widening it changes generated schedules.
const lookaheadDays = 5

// S3EntryDay is the day S3 travels up: one day before S1's Bajada, minus
// the induction S3 must finish first. It is negative when induction is
// longer than the work block allows.
func S3EntryDay(cfg domain.ScheduleConfig) int {
	s1BajadaDay := cfg.WorkDays
	return s1BajadaDay - cfg.InductionDays - 1
}

// CoverageStartDay is the first day on which a single driller counts as a
// violation: S3 has finished Subida and induction.
func CoverageStartDay(cfg domain.ScheduleConfig) int {
	return S3EntryDay(cfg) + cfg.InductionDays + 1
}

// s2FirstDrilling widens S2's first drilling block so S2 keeps drilling
// until S3 starts.
func s2FirstDrilling(cfg domain.ScheduleConfig) int {
	s3DrillStart := S3EntryDay(cfg) + 1 + cfg.InductionDays
	s2DrillStart := 1 + cfg.InductionDays
	return max(s3DrillStart-s2DrillStart-1, firstCycleDrilling(cfg)-1)
}

// generateS2 builds S2's track from S1's completed track. S2 follows S1's
// rotation shape but returns from rest early when S1 is about to leave.
func generateS2(s1 []domain.DayStatus, cfg domain.ScheduleConfig) []domain.DayStatus {
	days := newTrack(len(s1))
	w := newTrackWriter(days, 0)
	rest := cfg.RealRestDays()

	first := true
	for !w.done() {
		w.emit(domain.StatusSubida, 1)

		drilling := laterCycleDrilling(cfg)
		if first {
			w.emit(domain.StatusInduction, cfg.InductionDays)
			drilling = s2FirstDrilling(cfg)
		}

		w.emit(domain.StatusDrilling, drilling)
		w.emit(domain.StatusBajada, 1)

		for taken := 0; taken < rest && !w.done(); taken++ {
			if taken >= 1 && s1LeavingSoon(s1, w.day) {
				break
			}
			w.emit(domain.StatusRest, 1)
		}

		first = false
	}
	return days
}

// s1LeavingSoon reports whether S1 is in Bajada or Rest within the
// lookahead window after day.
func s1LeavingSoon(s1 []domain.DayStatus, day int) bool {
	for ahead := 1; ahead <= lookaheadDays && day+ahead < len(s1); ahead++ {
		switch s1[day+ahead] {
		case domain.StatusBajada, domain.StatusRest:
			return true
		}
	}
	return false
}

// generateS3 builds S3's track: Empty before its entry day, then S1's
// rotation shape with induction.
func generateS3(horizon int, cfg domain.ScheduleConfig) []domain.DayStatus {
	days := newTrack(horizon)
	generateCycle(days, S3EntryDay(cfg), cfg)
	return days
}
