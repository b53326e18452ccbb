// Package scheduler generates three-supervisor drilling rotations.
//
// The generator is a pure function of its config: S1 is built first, S2 is
// derived from S1, and S3 enters late enough to finish induction as S1 goes
// down. The horizon is trimmed against the drilling target and the result is
// scanned for staffing and pattern violations.
package scheduler

import (
	"fmt"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// SupervisorCount is the fixed crew size.
const SupervisorCount = 3

// GenerateSchedule computes the rotation for cfg. It does not validate cfg;
// out-of-range values yield degenerate but well-formed results.
func GenerateSchedule(cfg domain.ScheduleConfig) domain.ScheduleResult {
	estimated := max(cfg.EstimatedHorizon(), 0)

	s1 := newTrack(estimated)
	generateCycle(s1, 0, cfg)
	s2 := generateS2(s1, cfg)
	s3 := generateS3(estimated, cfg)

	raw := [][]domain.DayStatus{s1, s2, s3}
	horizon := min(finalHorizon(trimLength(raw, cfg.TotalDrillingDays), cfg), estimated)

	entries := []int{0, 0, S3EntryDay(cfg)}
	tracks := make([]domain.SupervisorTrack, SupervisorCount)
	for i, days := range raw {
		tracks[i] = domain.SupervisorTrack{
			ID:       fmt.Sprintf("S%d", i+1),
			Name:     fmt.Sprintf("Supervisor %d", i+1),
			EntryDay: entries[i],
			Days:     days[:horizon],
		}
	}

	counts := drillingCounts(raw, horizon)
	coverageStart := CoverageStartDay(cfg)

	return domain.ScheduleResult{
		Supervisors:      tracks,
		DrillingCount:    counts,
		TotalDays:        horizon,
		Violations:       scanViolations(tracks, counts, coverageStart),
		S3EntryDay:       entries[2],
		CoverageStartDay: coverageStart,
	}
}

func drillingCounts(tracks [][]domain.DayStatus, horizon int) []int {
	counts := make([]int, horizon)
	for day := range counts {
		counts[day] = drillersOn(tracks, day)
	}
	return counts
}
