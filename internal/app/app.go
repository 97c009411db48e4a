package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/laliga-forwards/internal/config"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
	"github.com/riskibarqy/laliga-forwards/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/laliga-forwards/internal/interfaces/httpapi"
	"github.com/riskibarqy/laliga-forwards/internal/observability"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
	"github.com/riskibarqy/laliga-forwards/internal/usecase"
)

// Services are the use cases shared by the HTTP API and the CLI.
type Services struct {
	Ranking *usecase.RankingService
	Uploads *usecase.UploadService
	Batch   *usecase.BatchService
	Metrics *observability.Metrics
}

func NewServices(cfg config.Config, logger *logging.Logger) (Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	table, err := points.LoadFile(cfg.PointsTablePath)
	if err != nil {
		return Services{}, fmt.Errorf("load points table: %w", err)
	}

	playerRepo, err := memory.NewPlayerRepository(memory.SeedPlayers())
	if err != nil {
		return Services{}, fmt.Errorf("seed players: %w", err)
	}

	var metrics *observability.Metrics
	var uploadMetrics usecase.UploadMetrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		uploadMetrics = metrics
	}

	rankingSvc := usecase.NewRankingService(playerRepo, table, cfg.RankingCacheTTL, logger)
	uploadSvc := usecase.NewUploadService(rankingSvc, cfg.UploadMaxBytes, uploadMetrics, logger)
	batchSvc := usecase.NewBatchService(uploadSvc, cfg.BatchWorkers, logger)

	return Services{
		Ranking: rankingSvc,
		Uploads: uploadSvc,
		Batch:   batchSvc,
		Metrics: metrics,
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	var metricsHandler http.Handler
	if services.Metrics != nil {
		metricsHandler = services.Metrics.Handler()
	}

	handler := httpapi.NewHandler(services.Ranking, services.Uploads, cfg.UploadMaxBytes, logger)
	router := httpapi.NewRouter(handler, metricsHandler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
