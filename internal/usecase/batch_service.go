package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultBatchWorkers = 4

// Ingester is the single-file pipeline BatchService fans out to.
type Ingester interface {
	Ingest(ctx context.Context, filename string, data []byte) (UploadResult, error)
}

type UploadFile struct {
	Name string
	Data []byte
}

// BatchItem is the outcome of one file. Err is set instead of Result
// when that file failed.
type BatchItem struct {
	Name   string
	Result UploadResult
	Err    error
}

type BatchService struct {
	ingester Ingester
	workers  int
	logger   *logging.Logger
}

func NewBatchService(ingester Ingester, workers int, logger *logging.Logger) *BatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	return &BatchService{
		ingester: ingester,
		workers:  workers,
		logger:   logger,
	}
}

// IngestFiles runs each file through the ingester on a worker pool.
// Items come back in input order; a failing file never stops the others.
func (s *BatchService) IngestFiles(ctx context.Context, files []UploadFile) ([]BatchItem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchService.IngestFiles",
		attribute.Int("batch.files", len(files)),
	)
	defer span.End()

	if len(files) == 0 {
		return nil, nil
	}

	workerCount := s.workers
	if workerCount > len(files) {
		workerCount = len(files)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	items := make([]BatchItem, len(files))
	var workers sync.WaitGroup
	for idx, file := range files {
		idx, file := idx, file
		items[idx].Name = file.Name

		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctxErr := ctx.Err(); ctxErr != nil {
				items[idx].Err = ctxErr
				return
			}
			items[idx].Result, items[idx].Err = s.ingester.Ingest(ctx, file.Name, file.Data)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("batch.failed", failed))
	s.logger.InfoContext(ctx, "batch ingest finished",
		"files", len(files),
		"failed", failed,
		"workers", workerCount,
	)
	return items, nil
}
