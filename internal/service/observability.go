package service

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// UseCaseEvent describes one completed service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	// Fields carries call-specific attributes such as run_id or regime.
	Fields map[string]any
}

// UseCaseObserver receives an event after every service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// violationsField is the event field that, when positive, raises the log
// level of a successful call to warn.
const violationsField = "violations"

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one slog text line per event at or above
// level to w. Failed calls log at error, schedules with violations at warn.
func NewLogUseCaseObserver(w io.Writer, level slog.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	// Sorted so lines are stable across runs.
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	switch {
	case event.Err != nil:
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
	case hasViolations(event.Fields):
		level = slog.LevelWarn
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func hasViolations(fields map[string]any) bool {
	n, ok := fields[violationsField].(int)
	return ok && n > 0
}

// multiUseCaseObserver forwards each event to every observer in order.
type multiUseCaseObserver []UseCaseObserver

func (m multiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		obs.ObserveUseCase(ctx, event)
	}
}

// useCaseObserverOrNoop combines the non-nil observers into one.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	var live multiUseCaseObserver
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}
