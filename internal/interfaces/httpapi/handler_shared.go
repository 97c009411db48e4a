package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/laliga-forwards/internal/platform/logging"
	"github.com/riskibarqy/laliga-forwards/internal/usecase"
)

const defaultRankingLimit = 0

type Handler struct {
	rankingService *usecase.RankingService
	uploadService  *usecase.UploadService
	uploadMaxBytes int64
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	rankingService *usecase.RankingService,
	uploadService *usecase.UploadService,
	uploadMaxBytes int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rankingService: rankingService,
		uploadService:  uploadService,
		uploadMaxBytes: uploadMaxBytes,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type listRankingsRequest struct {
	Limit int `validate:"gte=0,lte=1000"`
}

type exportRankingsRequest struct {
	Table string `validate:"required,oneof=scores stats"`
}

type playerDetailRequest struct {
	Name string `validate:"required,max=200"`
}

type templateRequest struct {
	Kind string `validate:"required,oneof=detailed simple sample"`
}

type uploadRequest struct {
	Filename string `validate:"omitempty,max=255"`
	Export   string `validate:"omitempty,oneof=scores stats"`
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultRankingLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}

type analyzeRequest struct {
	Players []playerInput `json:"players" validate:"required,min=1,max=1000,dive"`
}

type playerInput struct {
	Name                       string        `json:"name" validate:"required,max=200"`
	CareerGoals                int           `json:"careerGoals" validate:"gte=0"`
	CareerAwards               []string      `json:"careerAwards" validate:"max=100,dive,max=100"`
	TotalLaLigaTitles          int           `json:"totalLaLigaTitles" validate:"gte=0"`
	TotalChampionsLeagueTitles int           `json:"totalChampionsLeagueTitles" validate:"gte=0"`
	Seasons                    []seasonInput `json:"seasons" validate:"max=50,dive"`
}

type seasonInput struct {
	Season           string   `json:"season" validate:"max=50"`
	Goals            int      `json:"goals" validate:"gte=0"`
	Assists          int      `json:"assists" validate:"gte=0"`
	Squad            string   `json:"squad" validate:"max=100"`
	Awards           []string `json:"awards" validate:"max=50,dive,max=100"`
	TeamAchievements []string `json:"teamAchievements" validate:"max=50,dive,max=100"`
	CupFinalWinner   bool     `json:"cupFinalWinner"`
	CLAchievements   []string `json:"clAchievements" validate:"max=50,dive,max=100"`
}
