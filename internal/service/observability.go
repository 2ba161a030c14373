package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// ViewEvent captures lightweight execution telemetry for a view build
// (board or capacity).
type ViewEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// ViewObserver receives view-build events.
type ViewObserver interface {
	ObserveView(ctx context.Context, event ViewEvent)
}

// NoopViewObserver ignores all events.
type NoopViewObserver struct{}

func (NoopViewObserver) ObserveView(context.Context, ViewEvent) {}

type logViewObserver struct {
	logger *slog.Logger
}

// NewLogViewObserver writes view-build events to the provided writer.
func NewLogViewObserver(w io.Writer) ViewObserver {
	if w == nil {
		return NoopViewObserver{}
	}
	return &logViewObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logViewObserver) ObserveView(ctx context.Context, event ViewEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"view", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "view_build", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "view_build", attrs...)
}

func viewObserverOrNoop(observers []ViewObserver) ViewObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopViewObserver{}
}
