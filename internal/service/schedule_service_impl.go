package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/alexanderramin/drillrota/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	observer UseCaseObserver
}

func NewScheduleService(observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, req contract.ScheduleRequest) (resp *contract.ScheduleResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.New().String()
	fields := map[string]any{
		"run_id":    runID,
		"regime":    req.Config.Regime(),
		"induction": req.Config.InductionDays,
		"target":    req.Config.TotalDrillingDays,
	}
	if req.Preset != "" {
		fields["preset"] = req.Preset
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = req.Config.Validate(); err != nil {
		return nil, fmt.Errorf("generating schedule: %w", err)
	}

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	result := scheduler.GenerateSchedule(req.Config)
	summary := Summarize(result)
	fields["total_days"] = result.TotalDays
	fields["violations"] = summary.ViolationCount

	return &contract.ScheduleResponse{
		RunID:       runID,
		GeneratedAt: now,
		Preset:      req.Preset,
		Config:      req.Config,
		Result:      result,
		Summary:     summary,
		Groups:      GroupViolations(result.Violations),
	}, nil
}
