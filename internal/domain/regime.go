package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Accepted input ranges. The scheduler itself does not enforce them.
const (
	MinWorkDays          = 5
	MaxWorkDays          = 30
	MinRestDays          = 3
	MaxRestDays          = 14
	MinInductionDays     = 1
	MaxInductionDays     = 5
	MinTotalDrillingDays = 10
	MaxTotalDrillingDays = 365
)

// travelDays is the part of the rest block absorbed by Subida and Bajada.
const travelDays = 2

var ErrInvalidConfig = errors.New("invalid schedule config")

// ScheduleConfig describes an NxM regime with an induction period and a
// cumulative drilling target.
type ScheduleConfig struct {
	WorkDays          int `json:"work_days" koanf:"work_days"`
	RestDays          int `json:"rest_days" koanf:"rest_days"`
	InductionDays     int `json:"induction_days" koanf:"induction_days"`
	TotalDrillingDays int `json:"total_drilling_days" koanf:"total_drilling_days"`
}

// DefaultConfig is the 14x7 regime with 5 induction days and a 90 day target.
func DefaultConfig() ScheduleConfig {
	return ScheduleConfig{
		WorkDays:          14,
		RestDays:          7,
		InductionDays:     5,
		TotalDrillingDays: 90,
	}
}

// Regime returns the "NxM" notation.
func (c ScheduleConfig) Regime() string {
	return fmt.Sprintf("%dx%d", c.WorkDays, c.RestDays)
}

// RealRestDays is the number of off-site rest days per cycle, never negative.
func (c ScheduleConfig) RealRestDays() int {
	return max(c.RestDays-travelDays, 0)
}

// EstimatedHorizon is the pre-allocated schedule length. The final horizon
// never shrinks below it.
func (c ScheduleConfig) EstimatedHorizon() int {
	return int(math.Ceil(float64(c.TotalDrillingDays)*1.8)) + c.WorkDays + c.RestDays
}

// FieldError reports a single out-of-range parameter.
type FieldError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d (got %d)", e.Field, e.Min, e.Max, e.Value)
}

// ValidationError collects every out-of-range parameter of a config.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return ErrInvalidConfig.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrInvalidConfig)
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// Validate checks the config against the accepted input ranges.
func (c ScheduleConfig) Validate() error {
	var fields []FieldError
	check := func(name string, v, lo, hi int) {
		if v < lo || v > hi {
			fields = append(fields, FieldError{Field: name, Value: v, Min: lo, Max: hi})
		}
	}
	check("work_days", c.WorkDays, MinWorkDays, MaxWorkDays)
	check("rest_days", c.RestDays, MinRestDays, MaxRestDays)
	check("induction_days", c.InductionDays, MinInductionDays, MaxInductionDays)
	check("total_drilling_days", c.TotalDrillingDays, MinTotalDrillingDays, MaxTotalDrillingDays)

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
