package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/alexanderramin/drillrota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateSchedule_Invariants property-tests the result shape over
// random configs drawn from the accepted input ranges.
func TestGenerateSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		cfg := testutil.RandomConfig(rng)
		res := GenerateSchedule(cfg)

		require.Len(t, res.Supervisors, SupervisorCount, "trial %d", trial)

		// Invariant 1: every sequence has the final horizon length
		assert.Len(t, res.DrillingCount, res.TotalDays, "trial %d %+v", trial, cfg)
		for _, tr := range res.Supervisors {
			assert.Len(t, tr.Days, res.TotalDays, "trial %d %s", trial, tr.ID)
		}
		assert.GreaterOrEqual(t, res.TotalDays, cfg.EstimatedHorizon(), "trial %d", trial)

		// Invariant 2: drilling count matches the tracks
		for day, count := range res.DrillingCount {
			n := 0
			for _, tr := range res.Supervisors {
				if tr.Days[day] == domain.StatusDrilling {
					n++
				}
			}
			assert.Equal(t, n, count, "trial %d day %d", trial, day)
		}

		// Invariant 3: S3 is Empty exactly before its entry day
		s3 := res.Supervisors[2]
		for day, st := range s3.Days {
			if day < res.S3EntryDay {
				assert.Equal(t, domain.StatusEmpty, st, "trial %d day %d", trial, day)
			} else {
				assert.NotEqual(t, domain.StatusEmpty, st, "trial %d day %d", trial, day)
			}
		}

		// Invariant 4: S1 and S2 are never Empty
		for _, tr := range res.Supervisors[:2] {
			assert.NotContains(t, tr.Days, domain.StatusEmpty, "trial %d %s", trial, tr.ID)
		}

		// Invariant 5: coverage violations match their day conditions
		tooMany := 0
		for _, v := range res.Violations {
			switch v.Kind {
			case domain.ViolationTooMany:
				tooMany++
				assert.Greater(t, res.DrillingCount[v.Day], 2, "trial %d day %d", trial, v.Day)
			case domain.ViolationTooFew:
				assert.GreaterOrEqual(t, v.Day, res.CoverageStartDay, "trial %d", trial)
				assert.Equal(t, 1, res.DrillingCount[v.Day], "trial %d day %d", trial, v.Day)
			case domain.ViolationInvalidPattern:
				tr, ok := res.Supervisor(v.Supervisor)
				require.True(t, ok, "trial %d", trial)
				assert.Equal(t, domain.StatusSubida, tr.Days[v.Day])
				next := tr.Days[v.Day+1]
				assert.NotEqual(t, domain.StatusInduction, next, "trial %d", trial)
				assert.NotEqual(t, domain.StatusDrilling, next, "trial %d", trial)
			}
		}

		// Invariant 6: every over-staffed day is reported
		over := 0
		for _, c := range res.DrillingCount {
			if c > 2 {
				over++
			}
		}
		assert.Equal(t, over, tooMany, "trial %d", trial)

		// Invariant 7: violations come in day order
		for i := 1; i < len(res.Violations); i++ {
			assert.LessOrEqual(t, res.Violations[i-1].Day, res.Violations[i].Day, "trial %d", trial)
		}

		// Invariant 8: pure function
		assert.Equal(t, res, GenerateSchedule(cfg), "trial %d", trial)
	}
}
