package telemetry_test

import (
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pipbridge/internal/adapters/telemetry"
	"go.trai.ch/pipbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newBridgedTracer(t *testing.T, bridge *telemetry.LogBridge) *telemetry.OTelTracer {
	t.Helper()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return telemetry.NewTracer(tp, "test")
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	tracer := newBridgedTracer(t, telemetry.NewLogBridge(log))

	log.EXPECT().Info(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "span lock took ")
	}), "path", "/work/Pipfile", "default", int64(3))

	_, span := tracer.Start(t.Context(), "lock")
	span.SetAttribute("path", "/work/Pipfile")
	span.SetAttribute("default", 3)
	span.End()
}

func TestLogBridge_OnEnd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	tracer := newBridgedTracer(t, telemetry.NewLogBridge(log))

	log.EXPECT().Warn(gomock.Cond(func(msg string) bool {
		return strings.HasPrefix(msg, "span verify took ") && strings.HasSuffix(msg, ": lock is outdated")
	}))

	_, span := tracer.Start(t.Context(), "verify")
	span.RecordError(errors.New("lock is outdated"))
	span.End()
}

func TestLogBridge_NilLogger(t *testing.T) {
	tracer := newBridgedTracer(t, telemetry.NewLogBridge(nil))

	_, span := tracer.Start(t.Context(), "convert")
	span.End()
}
