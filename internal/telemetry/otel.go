// Package telemetry configures OpenTelemetry tracing. Spans go to the
// Langfuse OTLP endpoint, where the insights and assessment spans show up
// next to the ingested traces.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/blaisecz/sleepmitra/internal/config"
)

const otlpTracesPath = "/api/public/otel/v1/traces"

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// InitTracer installs the global tracer provider. Without Langfuse
// credentials the default noop provider stays in place.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string, logger *zap.Logger) (Shutdown, error) {
	if !cfg.LangfuseEnabled() {
		logger.Info("tracing disabled", zap.String("reason", "langfuse not configured"))
		return func(context.Context) error { return nil }, nil
	}

	endpoint := strings.TrimSuffix(cfg.LangfuseBaseURL, "/") + otlpTracesPath
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": basicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", cfg.LangfuseEnv),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceSampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("tracing enabled",
		zap.String("endpoint", endpoint),
		zap.Float64("sample_ratio", cfg.TraceSampleRatio),
	)
	return tp.Shutdown, nil
}
