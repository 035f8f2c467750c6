package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Install creates an SDK tracer provider with the given options and makes it the global provider.
// The returned function flushes pending spans and releases the provider.
func Install(opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, func(context.Context) error) {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp, tp.Shutdown
}
