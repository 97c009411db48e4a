package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
	"github.com/riskibarqy/laliga-forwards/internal/domain/player"
	"github.com/riskibarqy/laliga-forwards/internal/domain/scoring"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
	"github.com/riskibarqy/laliga-forwards/internal/platform/tabular"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	UploadOutcomeAccepted    = "accepted"
	UploadOutcomeRejected    = "rejected"
	UploadOutcomeParseFailed = "parse_failed"
	UploadOutcomeInvalid     = "invalid"

	defaultUploadName = "upload"
	parseFailureHint  = "Save the sheet as a CSV file with a header row and at least four columns."
)

// UploadMetrics receives one observation per ingested upload.
type UploadMetrics interface {
	ObserveUpload(format, outcome string, rows int)
}

type UploadResult struct {
	Filename  string
	Format    ingest.Format
	Encoding  tabular.Encoding
	Delimiter rune
	Message   string
	Rows      int
	Skipped   int
	Players   player.Collection
	Analysis  scoring.Analysis
}

// UploadService turns an uploaded file into scored players: parse,
// detect, validate, transform, analyse.
type UploadService struct {
	ranking  *RankingService
	parser   *tabular.Parser
	maxBytes int64
	metrics  UploadMetrics
	logger   *logging.Logger
}

func NewUploadService(ranking *RankingService, maxBytes int64, metrics UploadMetrics, logger *logging.Logger) *UploadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UploadService{
		ranking:  ranking,
		parser:   tabular.NewParser(),
		maxBytes: maxBytes,
		metrics:  metrics,
		logger:   logger,
	}
}

// Ingest runs the whole pipeline for one file. Parse failures carry the
// diagnostics report as an error detail and a hint; validation failures
// carry the validator's message.
func (s *UploadService) Ingest(ctx context.Context, filename string, data []byte) (UploadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.Ingest",
		attribute.Int("upload.bytes", len(data)),
	)
	defer span.End()

	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = defaultUploadName
	}

	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		s.observe(span, ingest.FormatUnknown, UploadOutcomeRejected, 0)
		return UploadResult{}, fmt.Errorf("%w: %s is %d bytes, the limit is %d", ErrInvalidInput, filename, len(data), s.maxBytes)
	}

	parsed, err := s.parser.Parse(data)
	if err != nil {
		report := tabular.Diagnose(data)
		s.observe(span, ingest.FormatUnknown, UploadOutcomeParseFailed, 0)
		s.logger.WarnContext(ctx, "upload could not be parsed",
			"file", filename,
			"bytes", len(data),
			"error", err,
		)

		hint := parseFailureHint
		if len(report.Hints) > 0 {
			hint = report.Hints[0]
		}
		wrapped := fmt.Errorf("%w: %s: %v", ErrParseFailure, filename, err)
		return UploadResult{}, crerr.WithHint(crerr.WithDetail(wrapped, report.String()), hint)
	}

	verdict := ingest.Validate(parsed.Table)
	if !verdict.Valid {
		s.observe(span, verdict.Format, UploadOutcomeInvalid, parsed.Table.NumRows())
		s.logger.WarnContext(ctx, "upload rejected by validation",
			"file", filename,
			"format", verdict.Format.String(),
			"rows", parsed.Table.NumRows(),
		)
		return UploadResult{}, fmt.Errorf("%w: %s", ErrValidationFailure, verdict.Message)
	}

	out := ingest.Transform(parsed.Table, verdict)
	if out.Players.Len() == 0 {
		s.observe(span, verdict.Format, UploadOutcomeInvalid, parsed.Table.NumRows())
		return UploadResult{}, fmt.Errorf("%w: no player rows could be read from %s (%d skipped)", ErrValidationFailure, filename, out.Skipped)
	}

	result := UploadResult{
		Filename:  filename,
		Format:    verdict.Format,
		Encoding:  parsed.Encoding,
		Delimiter: parsed.Delimiter,
		Message:   verdict.Message,
		Rows:      verdict.Rows,
		Skipped:   out.Skipped,
		Players:   out.Players,
		Analysis:  s.ranking.Analyze(ctx, out.Players),
	}

	s.observe(span, verdict.Format, UploadOutcomeAccepted, verdict.Rows)
	s.logger.InfoContext(ctx, "upload ingested",
		"file", filename,
		"format", verdict.Format.String(),
		"encoding", string(parsed.Encoding),
		"players", out.Players.Len(),
		"skipped", out.Skipped,
	)
	return result, nil
}

func (s *UploadService) observe(span trace.Span, format ingest.Format, outcome string, rows int) {
	span.SetAttributes(uploadOutcomeAttributes(format, outcome, rows)...)
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveUpload(format.String(), outcome, rows)
}
