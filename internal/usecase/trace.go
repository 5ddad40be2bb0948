package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("championship-progression/internal/usecase")

// startUsecaseSpan only opens a span under a sampled parent, so background
// work without a request trace stays span-free.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func championshipAttr(id string) attribute.KeyValue {
	return attribute.String("championship.id", id)
}

func matchAttr(id string) attribute.KeyValue {
	return attribute.String("match.id", id)
}
