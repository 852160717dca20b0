package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("golf-league/internal/usecase")

// startUsecaseSpan only records child spans; a call that arrives without a
// sampled parent (seed tool, tests) gets the context's own no-op span back.
func startUsecaseSpan(ctx context.Context, service, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}

	attrs = append(attrs,
		attribute.String("usecase.service", service),
		attribute.String("usecase.operation", operation),
	)
	return tracer.Start(ctx, "usecase."+service+"."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}
