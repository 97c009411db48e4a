package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
)

var usecaseTracer = otel.Tracer("laliga-forwards/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens child spans. CLI runs and tests have no
// parent span and get a noop span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func uploadOutcomeAttributes(format ingest.Format, outcome string, rows int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("upload.format", format.String()),
		attribute.String("upload.outcome", outcome),
		attribute.Int("upload.rows", rows),
	}
}
