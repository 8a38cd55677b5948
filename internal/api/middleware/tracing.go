package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sleepmitra/http"

// Tracing opens a server span per request, continuing any trace context
// sent by the caller. Once chi has routed the request the span is named
// after the route pattern, so profile IDs stay out of span names.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.URLPath(r.URL.Path),
			),
		)
		defer span.End()

		setJSONAttr(span, "langfuse.observation.input", requestSummary(r))

		sr := newStatusRecorder(w)
		start := time.Now()
		next.ServeHTTP(sr, r.WithContext(ctx))

		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			route := rctx.RoutePattern()
			span.SetName(r.Method + " " + route)
			span.SetAttributes(semconv.HTTPRoute(route))
		}
		span.SetAttributes(semconv.HTTPResponseStatusCode(sr.statusCode))
		if sr.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sr.statusCode))
		}

		setJSONAttr(span, "langfuse.observation.output", map[string]any{
			"status_code": sr.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

func requestSummary(r *http.Request) map[string]any {
	summary := map[string]any{"method": r.Method, "path": r.URL.Path}
	if r.URL.RawQuery != "" {
		summary["query"] = r.URL.RawQuery
	}
	return summary
}

func setJSONAttr(span trace.Span, key string, v any) {
	if data, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String(key, string(data)))
	}
}
