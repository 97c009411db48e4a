package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/points"
	"github.com/riskibarqy/laliga-forwards/internal/domain/scoring"
	"github.com/riskibarqy/laliga-forwards/internal/platform/cache"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
)

const builtinDatasetKey = "dataset:builtin"

// PlayerDetail is a single player's record with its scoring explained.
type PlayerDetail struct {
	Record    player.Record
	Breakdown scoring.Breakdown
	Stats     scoring.Stats
}

type builtinDataset struct {
	players  player.Collection
	analysis scoring.Analysis
}

// RankingService scores the built-in dataset and arbitrary collections
// against one points table.
type RankingService struct {
	repo   player.Repository
	table  points.Table
	cache  *cache.Store[builtinDataset]
	logger *logging.Logger
}

// NewRankingService memoizes the built-in analysis for cacheTTL; zero
// keeps it for the life of the process.
func NewRankingService(repo player.Repository, table points.Table, cacheTTL time.Duration, logger *logging.Logger) *RankingService {
	if logger == nil {
		logger = logging.Default()
	}
	if table.Len() == 0 {
		table = points.Default()
	}

	return &RankingService{
		repo:   repo,
		table:  table,
		cache:  cache.NewStore[builtinDataset](cacheTTL),
		logger: logger,
	}
}

func (s *RankingService) PointsTable() points.Table {
	return s.table
}

func (s *RankingService) Analyze(ctx context.Context, players player.Collection) scoring.Analysis {
	_, span := startUsecaseSpan(ctx, "usecase.RankingService.Analyze")
	defer span.End()

	return scoring.Analyze(players, s.table)
}

// AnalyzeRecords scores caller supplied records. A later record with the
// same name replaces the earlier one.
func (s *RankingService) AnalyzeRecords(ctx context.Context, records []player.Record) (scoring.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.AnalyzeRecords")
	defer span.End()

	if len(records) == 0 {
		return scoring.Analysis{}, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}
	players, err := player.NewCollection(records...)
	if err != nil {
		return scoring.Analysis{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Analyze(ctx, players), nil
}

func (s *RankingService) BuiltinAnalysis(ctx context.Context) (scoring.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.BuiltinAnalysis")
	defer span.End()

	dataset, err := s.builtin(ctx)
	if err != nil {
		return scoring.Analysis{}, err
	}
	return dataset.analysis, nil
}

func (s *RankingService) PlayerDetail(ctx context.Context, name string) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.PlayerDetail")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return PlayerDetail{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	dataset, err := s.builtin(ctx)
	if err != nil {
		return PlayerDetail{}, err
	}

	record, ok := dataset.players.Get(name)
	if !ok {
		return PlayerDetail{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}

	return PlayerDetail{
		Record:    record,
		Breakdown: scoring.Explain(record, s.table),
		Stats:     scoring.DeriveStats(record, s.table),
	}, nil
}

func (s *RankingService) builtin(ctx context.Context) (builtinDataset, error) {
	return s.cache.GetOrLoad(ctx, builtinDatasetKey, func(ctx context.Context) (builtinDataset, error) {
		players, err := s.repo.List(ctx)
		if err != nil {
			return builtinDataset{}, fmt.Errorf("list built-in players: %w", err)
		}

		analysis := scoring.Analyze(players, s.table)
		s.logger.InfoContext(ctx, "built-in dataset analysed",
			"players", players.Len(),
			"points_entries", s.table.Len(),
		)
		return builtinDataset{players: players, analysis: analysis}, nil
	})
}
