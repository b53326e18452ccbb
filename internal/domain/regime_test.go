package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "14x7", cfg.Regime())
}

func TestRealRestDays(t *testing.T) {
	cases := []struct {
		rest int
		want int
	}{
		{7, 5},
		{3, 1},
		{2, 0},
		{1, 0},
		{0, 0},
	}
	for _, tc := range cases {
		cfg := ScheduleConfig{RestDays: tc.rest}
		assert.Equal(t, tc.want, cfg.RealRestDays(), "rest=%d", tc.rest)
	}
}

func TestEstimatedHorizon(t *testing.T) {
	assert.Equal(t, 183, DefaultConfig().EstimatedHorizon())
	// ceil(10*1.8) + 5 + 3
	assert.Equal(t, 26, ScheduleConfig{WorkDays: 5, RestDays: 3, TotalDrillingDays: 10}.EstimatedHorizon())
	// ceil(95*1.8) = 171
	assert.Equal(t, 191, ScheduleConfig{WorkDays: 14, RestDays: 6, TotalDrillingDays: 95}.EstimatedHorizon())
}

func TestValidate_Bounds(t *testing.T) {
	lo := ScheduleConfig{WorkDays: MinWorkDays, RestDays: MinRestDays, InductionDays: MinInductionDays, TotalDrillingDays: MinTotalDrillingDays}
	hi := ScheduleConfig{WorkDays: MaxWorkDays, RestDays: MaxRestDays, InductionDays: MaxInductionDays, TotalDrillingDays: MaxTotalDrillingDays}
	assert.NoError(t, lo.Validate())
	assert.NoError(t, hi.Validate())
}

func TestValidate_CollectsEveryField(t *testing.T) {
	cfg := ScheduleConfig{WorkDays: 4, RestDays: 15, InductionDays: 0, TotalDrillingDays: 366}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 4)
	assert.Equal(t, "work_days", verr.Fields[0].Field)
	assert.Equal(t, "total_drilling_days", verr.Fields[3].Field)

	assert.Equal(t,
		"invalid schedule config: work_days must be between 5 and 30 (got 4); "+
			"rest_days must be between 3 and 14 (got 15); "+
			"induction_days must be between 1 and 5 (got 0); "+
			"total_drilling_days must be between 10 and 365 (got 366)",
		err.Error())
}

func TestValidate_FieldErrorIsMatchable(t *testing.T) {
	err := ScheduleConfig{WorkDays: 14, RestDays: 7, InductionDays: 9, TotalDrillingDays: 90}.Validate()

	var ferr FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "induction_days", ferr.Field)
	assert.Equal(t, 9, ferr.Value)
}

func TestPresets(t *testing.T) {
	presets := DefaultPresets()
	require.Len(t, presets, 4)

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
		assert.NoError(t, p.Config.Validate(), "preset %s", p.Name)
		assert.Equal(t, p.Config.Regime(), p.Name)
	}
	assert.Equal(t, []string{"14x7", "21x7", "10x5", "14x6"}, names)
	assert.Equal(t, "14x6 / 4 ind / 95d", presets[3].DisplayLabel())
}

func TestPreset_DisplayLabelFallsBackToConfig(t *testing.T) {
	p := Preset{Name: "x", Config: ScheduleConfig{WorkDays: 7, RestDays: 7, InductionDays: 1, TotalDrillingDays: 30}}
	assert.Equal(t, "7x7 / 1 ind / 30d", p.DisplayLabel())

	p.Label = "Night shift"
	assert.Equal(t, "Night shift", p.DisplayLabel())
}
