package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartUsecaseSpan_WithoutParentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := startUsecaseSpan(ctx, "usecase.Test")
	require.Equal(t, ctx, got)
	require.False(t, span.IsRecording())
	require.False(t, span.SpanContext().IsValid())
}

func TestUploadService_ObserveTagsSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	service, metrics := newTestUploadService(t, 0)
	_, span := provider.Tracer("test").Start(context.Background(), "upload")
	service.observe(span, ingest.FormatFootballStats, UploadOutcomeAccepted, 12)
	span.End()

	require.Equal(t, uploadObservation{format: "football_stats", outcome: UploadOutcomeAccepted, rows: 12}, metrics.last(t))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	require.Equal(t, "football_stats", attrs["upload.format"].AsString())
	require.Equal(t, UploadOutcomeAccepted, attrs["upload.outcome"].AsString())
	require.EqualValues(t, 12, attrs["upload.rows"].AsInt64())
}
