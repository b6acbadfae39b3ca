package polint

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// tracer is the package-level tracer used by all instrumented code.
// Initialized to a noop tracer so library consumers can call CheckFiles
// without InitTracer. When InitTracer is called, this is replaced.
var tracer trace.Tracer = tracenoop.NewTracerProvider().Tracer("polint")

// meter and the counters follow the same pattern for metrics.
var meter metric.Meter = metricnoop.NewMeterProvider().Meter("polint")

var (
	catalogsChecked metric.Int64Counter
	entriesParsed   metric.Int64Counter
	issuesFound     metric.Int64Counter
)

func init() {
	initInstruments()
}

// initInstruments (re)creates the counters from the active meter. Called
// once at package init against the noop meter, and again by InitMeter.
func initInstruments() {
	catalogsChecked, _ = meter.Int64Counter("polint.catalogs.checked",
		metric.WithDescription("Catalogs read and checked"))
	entriesParsed, _ = meter.Int64Counter("polint.entries.parsed",
		metric.WithDescription("Entries parsed out of all catalogs"))
	issuesFound, _ = meter.Int64Counter("polint.issues.found",
		metric.WithDescription("Suspicious translations reported"))
}

// InitTracer sets up the OpenTelemetry TracerProvider.
// If OTEL_EXPORTER_OTLP_ENDPOINT is set, it creates an OTLP HTTP exporter
// with a BatchSpanProcessor. Otherwise, it uses the noop TracerProvider.
// Returns a shutdown function that flushes and closes the exporter.
func InitTracer(serviceName, ver string) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		// No endpoint configured: keep the noop tracer.
		return func(context.Context) error { return nil }
	}

	exp, err := otlptracehttp.New(context.Background())
	if err != nil {
		// Exporter creation failed, keep noop so the CLI is not blocked.
		return func(context.Context) error { return nil }
	}

	res, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ver),
		),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(serviceName)

	return func(ctx context.Context) error {
		return tp.Shutdown(ctx)
	}
}

// InitMeter sets up the OpenTelemetry MeterProvider, gated on the same
// OTEL_EXPORTER_OTLP_ENDPOINT variable as InitTracer. Without it the
// counters stay noop and cost nothing.
func InitMeter(serviceName, ver string) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}

	exp, err := otlpmetrichttp.New(context.Background())
	if err != nil {
		return func(context.Context) error { return nil }
	}

	res, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ver),
		),
	)

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	meter = mp.Meter(serviceName)
	initInstruments()

	return func(ctx context.Context) error {
		return mp.Shutdown(ctx)
	}
}
