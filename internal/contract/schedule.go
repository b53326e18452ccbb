package contract

import (
	"time"

	"github.com/alexanderramin/drillrota/internal/domain"
)

// ScheduleRequest asks for one schedule calculation. Config is used as is;
// Preset, when set, is resolved by the caller before the request is sent.
type ScheduleRequest struct {
	Config domain.ScheduleConfig
	Preset string
	Now    *time.Time
}

func NewScheduleRequest(cfg domain.ScheduleConfig) ScheduleRequest {
	return ScheduleRequest{Config: cfg}
}

type ScheduleResponse struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Preset      string                `json:"preset,omitempty"`
	Config      domain.ScheduleConfig `json:"config"`
	Result      domain.ScheduleResult `json:"result"`
	Summary     ScheduleSummary       `json:"summary"`
	Groups      []ViolationGroup      `json:"violation_groups"`
}

// ScheduleSummary holds the figures shown in the statistics panel.
type ScheduleSummary struct {
	TotalDays          int     `json:"total_days"`
	DrillingPersonDays int     `json:"drilling_person_days"`
	ValidDays          int     `json:"valid_days"`
	ViolationCount     int     `json:"violation_count"`
	S3FirstActiveDay   int     `json:"s3_first_active_day"`
	S3FirstDrillingDay int     `json:"s3_first_drilling_day"`
	MeanDrillers       float64 `json:"mean_drillers"`
	StdDevDrillers     float64 `json:"stddev_drillers"`
}

// IsValid reports whether the schedule has no violations.
func (s ScheduleSummary) IsValid() bool {
	return s.ViolationCount == 0
}

// ViolationGroup collects violations of one kind in discovery order.
type ViolationGroup struct {
	Kind       domain.ViolationKind `json:"kind"`
	Violations []domain.Violation   `json:"violations"`
}
