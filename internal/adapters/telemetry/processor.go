package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pacforge/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by logging spans that end
// with an error status.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a new LogProcessor.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs a warning for failed spans.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || s.Status().Code != codes.Error {
		return
	}

	var b strings.Builder
	b.WriteString(s.Name())
	if packages := stringAttribute(s.Attributes(), "packages"); packages != "" {
		b.WriteString(" " + packages)
	}
	b.WriteString(" failed after " + s.EndTime().Sub(s.StartTime()).Round(time.Millisecond).String())
	if desc := s.Status().Description; desc != "" {
		b.WriteString(": " + desc)
	}
	p.logger.Warn(b.String())
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error {
	return nil
}
