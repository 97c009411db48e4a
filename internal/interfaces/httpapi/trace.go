package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("laliga-forwards/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens spans for handlers only. Middleware and helpers reuse
// the request span, and untraced routes such as /healthz get a noop span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

func uploadAttributes(filename string, size int, export string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("upload.filename", filename),
		attribute.Int("upload.bytes", size),
	}
	if export != "" {
		attrs = append(attrs, attribute.String("upload.export", export))
	}
	return attrs
}
