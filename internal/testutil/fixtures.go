package testutil

import (
	"math/rand"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// Config options
type ConfigOption func(*domain.ScheduleConfig)

func WithWorkDays(n int) ConfigOption {
	return func(c *domain.ScheduleConfig) {
		c.WorkDays = n
	}
}

func WithRestDays(n int) ConfigOption {
	return func(c *domain.ScheduleConfig) {
		c.RestDays = n
	}
}

func WithInductionDays(n int) ConfigOption {
	return func(c *domain.ScheduleConfig) {
		c.InductionDays = n
	}
}

func WithTotalDrillingDays(n int) ConfigOption {
	return func(c *domain.ScheduleConfig) {
		c.TotalDrillingDays = n
	}
}

// NewTestConfig starts from the 14x7 / 5 ind / 90d regime.
func NewTestConfig(opts ...ConfigOption) domain.ScheduleConfig {
	cfg := domain.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RandomConfig draws a config uniformly from the accepted input ranges.
func RandomConfig(rng *rand.Rand) domain.ScheduleConfig {
	between := func(lo, hi int) int {
		return lo + rng.Intn(hi-lo+1)
	}
	return domain.ScheduleConfig{
		WorkDays:          between(domain.MinWorkDays, domain.MaxWorkDays),
		RestDays:          between(domain.MinRestDays, domain.MaxRestDays),
		InductionDays:     between(domain.MinInductionDays, domain.MaxInductionDays),
		TotalDrillingDays: between(domain.MinTotalDrillingDays, domain.MaxTotalDrillingDays),
	}
}
