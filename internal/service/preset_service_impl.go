package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
)

var ErrPresetNotFound = errors.New("preset not found")

type presetService struct {
	presets []domain.Preset
}

// NewPresetService serves the built-in presets followed by extra. An extra
// preset whose name matches a built-in one replaces it in place.
func NewPresetService(extra ...domain.Preset) PresetService {
	presets := domain.DefaultPresets()
	for _, p := range extra {
		if i := indexPreset(presets, p.Name); i >= 0 {
			presets[i] = p
			continue
		}
		presets = append(presets, p)
	}
	return &presetService{presets: presets}
}

func (s *presetService) List(ctx context.Context) ([]domain.Preset, error) {
	out := make([]domain.Preset, len(s.presets))
	copy(out, s.presets)
	return out, nil
}

func (s *presetService) Get(ctx context.Context, name string) (*domain.Preset, error) {
	i := indexPreset(s.presets, name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	p := s.presets[i]
	return &p, nil
}

func indexPreset(presets []domain.Preset, name string) int {
	for i, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
