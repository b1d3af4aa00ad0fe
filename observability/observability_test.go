package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("grantkit")

	if cfg.ServiceName != "grantkit" {
		t.Errorf("expected ServiceName 'grantkit', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("grantkit")

	if cfg.ServiceName != "grantkit" {
		t.Errorf("expected ServiceName 'grantkit', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestStartSpan_RecordsAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), SpanResolve)
	SetSpanAttribute(ctx, AttrTarget, "user")
	SetSpanAttribute(ctx, AttrRuleCount, 3)
	SetSpanError(ctx, fmt.Errorf("denied"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != SpanResolve {
		t.Errorf("expected span name %q, got %q", SpanResolve, spans[0].Name)
	}

	attrs := make(map[string]any)
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	if attrs[AttrTarget] != "user" {
		t.Errorf("expected target attribute 'user', got %v", attrs[AttrTarget])
	}
	if attrs[AttrRuleCount] != int64(3) {
		t.Errorf("expected rule_count attribute 3, got %v", attrs[AttrRuleCount])
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected the recorded error to appear as a span event")
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordResolution(ctx, "user", 3, 100*time.Millisecond)
	metrics.RecordCheck(ctx, "user", "allow")
	metrics.RecordDenial(ctx, "user", "ACCESS_DENIED")
}
