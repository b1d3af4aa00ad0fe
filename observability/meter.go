package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/grantkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for authorization activity.
type Metrics struct {
	resolutionTotal    metric.Int64Counter
	resolutionDuration metric.Float64Histogram
	checkTotal         metric.Int64Counter
	denialTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolutionTotal, err := meter.Int64Counter("authz.resolution.total",
		metric.WithDescription("Total number of grant resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.resolution.total counter: %w", err)
	}

	resolutionDuration, err := meter.Float64Histogram("authz.resolution.duration",
		metric.WithDescription("Duration of grant resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.resolution.duration histogram: %w", err)
	}

	checkTotal, err := meter.Int64Counter("authz.check.total",
		metric.WithDescription("Total number of authorization checks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.check.total counter: %w", err)
	}

	denialTotal, err := meter.Int64Counter("authz.denial.total",
		metric.WithDescription("Total denials by error code and target"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authz.denial.total counter: %w", err)
	}

	return &Metrics{
		resolutionTotal:    resolutionTotal,
		resolutionDuration: resolutionDuration,
		checkTotal:         checkTotal,
		denialTotal:        denialTotal,
	}, nil
}

// RecordResolution records a completed grant resolution.
func (m *Metrics) RecordResolution(ctx context.Context, target string, ruleCount int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("target", target),
		attribute.Int("rule_count", ruleCount),
	)
	m.resolutionTotal.Add(ctx, 1, attrs)
	m.resolutionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("target", target),
	))
}

// RecordCheck records an authorization check and its outcome.
func (m *Metrics) RecordCheck(ctx context.Context, target, decision string) {
	m.checkTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("target", target),
		attribute.String("decision", decision),
	))
}

// RecordDenial records a denial by error code and target.
func (m *Metrics) RecordDenial(ctx context.Context, target, code string) {
	m.denialTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("target", target),
		attribute.String("code", code),
	))
}
