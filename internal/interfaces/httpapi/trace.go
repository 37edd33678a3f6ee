package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	apiTracer = otel.Tracer("football-chatbot/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// tracedSpanPrefixes lists the span names worth exporting. Helpers and the outer
// middleware stay silent because otelhttp already covers the request.
var tracedSpanPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.RequireAdminToken",
}

// startSpan only opens child spans, so requests filtered out of tracing never
// produce orphan roots.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
