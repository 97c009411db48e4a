package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

type ingesterFunc func(ctx context.Context, filename string, data []byte) (UploadResult, error)

func (f ingesterFunc) Ingest(ctx context.Context, filename string, data []byte) (UploadResult, error) {
	return f(ctx, filename, data)
}

func TestBatchService_IngestFiles_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	ingester := ingesterFunc(func(_ context.Context, filename string, data []byte) (UploadResult, error) {
		now := running.Add(1)
		defer running.Add(-1)
		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if string(data) == "bad" {
			return UploadResult{}, fmt.Errorf("%w: %s", ErrValidationFailure, filename)
		}
		return UploadResult{Filename: filename, Rows: len(data)}, nil
	})

	files := []UploadFile{
		{Name: "a.csv", Data: []byte("a")},
		{Name: "b.csv", Data: []byte("bad")},
		{Name: "c.csv", Data: []byte("ccc")},
		{Name: "d.csv", Data: []byte("dd")},
		{Name: "e.csv", Data: []byte("eeeee")},
	}

	service := NewBatchService(ingester, 2, logging.NewNop())
	items, err := service.IngestFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, items, len(files))

	for idx, item := range items {
		require.Equal(t, files[idx].Name, item.Name)
	}
	require.ErrorIs(t, items[1].Err, ErrValidationFailure)
	require.NoError(t, items[0].Err)
	require.Equal(t, 3, items[2].Result.Rows)
	require.Equal(t, 5, items[4].Result.Rows)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestBatchService_IngestFiles_Empty(t *testing.T) {
	t.Parallel()

	service := NewBatchService(ingesterFunc(func(context.Context, string, []byte) (UploadResult, error) {
		t.Fatalf("ingester must not be called")
		return UploadResult{}, nil
	}), 0, nil)

	items, err := service.IngestFiles(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, items)
}

func TestBatchService_IngestFiles_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	service := NewBatchService(ingesterFunc(func(context.Context, string, []byte) (UploadResult, error) {
		calls.Add(1)
		return UploadResult{}, nil
	}), 3, logging.NewNop())

	items, err := service.IngestFiles(ctx, []UploadFile{{Name: "x.csv"}, {Name: "y.csv"}})
	require.NoError(t, err)
	for _, item := range items {
		require.True(t, errors.Is(item.Err, context.Canceled))
	}
	require.Zero(t, calls.Load())
}

func TestBatchService_WithUploadService(t *testing.T) {
	t.Parallel()

	uploads, _ := newTestUploadService(t, 0)
	service := NewBatchService(uploads, 4, logging.NewNop())

	items, err := service.IngestFiles(context.Background(), []UploadFile{
		{Name: "detailed.csv", Data: []byte(ingest.DetailedTemplate())},
		{Name: "broken.csv", Data: []byte("x\n")},
		{Name: "sample.csv", Data: []byte(ingest.SampleContent())},
	})
	require.NoError(t, err)
	require.NoError(t, items[0].Err)
	require.ErrorIs(t, items[1].Err, ErrParseFailure)
	require.NoError(t, items[2].Err)
	require.Equal(t, 5, items[2].Result.Players.Len())
}
