package service

import (
	"context"

	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/alexanderramin/drillrota/internal/domain"
)

type ScheduleService interface {
	Generate(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}

type PresetService interface {
	List(ctx context.Context) ([]domain.Preset, error)
	Get(ctx context.Context, name string) (*domain.Preset, error)
}
