package scheduler

import (
	"strings"
	"testing"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/alexanderramin/drillrota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCycle_14x7FirstTwoRotations(t *testing.T) {
	cfg := testutil.NewTestConfig()
	days := newTrack(45)

	generateCycle(days, 0, cfg)

	want := "SIIIIIPPPPPPPPPBDDDDD" + // first rotation: 1 + 5 + 9 + 1 + 5
		"SPPPPPPPPPPPPPBDDDDD" + // later rotations: 1 + 13 + 1 + 5
		"SPPP"
	assert.Equal(t, want, compact(days))
}

func TestGenerateCycle_LeavesDaysBeforeStart(t *testing.T) {
	cfg := testutil.NewTestConfig(testutil.WithWorkDays(5), testutil.WithRestDays(4), testutil.WithInductionDays(2))
	days := newTrack(12)

	generateCycle(days, 4, cfg)

	assert.Equal(t, "----SIIPPPBD", compact(days))
}

func TestGenerateCycle_TruncatesAtHorizon(t *testing.T) {
	cfg := testutil.NewTestConfig()
	days := newTrack(4)

	generateCycle(days, 0, cfg)

	assert.Equal(t, "SIII", compact(days))
}

func TestGenerateCycle_ThreeRestDaysGiveOneRealRestDay(t *testing.T) {
	cfg := testutil.NewTestConfig(testutil.WithRestDays(3))
	days := newTrack(200)

	generateCycle(days, 0, cfg)

	s := compact(days)
	// Every Bajada is followed by exactly one rest day and then a Subida.
	for i := 0; i+2 < len(s); i++ {
		if s[i] == 'B' {
			assert.Equal(t, "BDS", s[i:i+3], "day %d", i)
		}
	}
}

func TestGenerateCycle_TwoRestDaysEmitNoRest(t *testing.T) {
	cfg := testutil.NewTestConfig(testutil.WithRestDays(2))
	days := newTrack(200)

	generateCycle(days, 0, cfg)

	s := compact(days)
	assert.NotContains(t, s, "D")
	assert.Contains(t, s, "BS", "bajada must be followed directly by the next subida")
}

func TestGenerateCycle_NonPositiveRestDoesNotUnderflow(t *testing.T) {
	for _, rest := range []int{2, 1, 0, -5} {
		cfg := testutil.NewTestConfig(testutil.WithRestDays(rest))
		days := newTrack(100)

		require.NotPanics(t, func() { generateCycle(days, 0, cfg) }, "rest=%d", rest)
		assert.NotContains(t, compact(days), "D", "rest=%d", rest)
		assert.NotContains(t, compact(days), "-", "rest=%d: every day must be written", rest)
	}
}

func TestGenerateCycle_NegativeStartSkipsUnwrittenDays(t *testing.T) {
	cfg := testutil.NewTestConfig(testutil.WithWorkDays(5), testutil.WithInductionDays(5))
	days := newTrack(8)

	generateCycle(days, -1, cfg)

	// The Subida falls on day -1; induction starts on day 0.
	assert.Equal(t, "IIIIIBDD", compact(days))
}

func TestGenerateCycle_InductionOnlyOnFirstRotation(t *testing.T) {
	cfg := testutil.NewTestConfig(testutil.WithWorkDays(10), testutil.WithRestDays(5), testutil.WithInductionDays(2))
	days := newTrack(120)

	generateCycle(days, 0, cfg)

	s := compact(days)
	assert.Equal(t, 2, strings.Count(s, "I"))
	assert.True(t, strings.HasPrefix(s, "SII"))
	assert.Equal(t, domain.StatusSubida, days[0])
}
