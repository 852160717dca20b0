package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("golf-league/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startHandlerSpan opens the one span a handler owns and tags it with the
// matched route pattern.
func startHandlerSpan(r *http.Request, method string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), handlerSpanPrefix+method)
	if span.IsRecording() && r.Pattern != "" {
		span.SetAttributes(attribute.String("http.route", r.Pattern))
	}
	return ctx, span
}

// startSpan only opens spans for handlers and only under the otelhttp server
// span. Middleware and response helpers get the no-op span, and unfiltered
// routes such as /healthz never start a root span of their own.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}
