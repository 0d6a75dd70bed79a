// Package telemetry provides the OpenTelemetry tracer of pacforge.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/pacforge/internal/core/ports"
)

// InstrumentationName names the tracer used by pacforge.
const InstrumentationName = "go.trai.ch/pacforge"

// NewProvider creates a tracer provider that reports failed spans to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
}

// Tracer returns the pacforge tracer of provider.
func Tracer(provider trace.TracerProvider) trace.Tracer {
	return provider.Tracer(InstrumentationName)
}

// Shutdown flushes and stops provider.
func Shutdown(ctx context.Context, provider *sdktrace.TracerProvider) error {
	return provider.Shutdown(ctx)
}

func stringAttribute(attrs []attribute.KeyValue, key attribute.Key) string {
	for _, kv := range attrs {
		if kv.Key != key {
			continue
		}
		if kv.Value.Type() == attribute.STRINGSLICE {
			return "[" + strings.Join(kv.Value.AsStringSlice(), " ") + "]"
		}
		return kv.Value.Emit()
	}
	return ""
}
