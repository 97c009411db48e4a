package httpapi

import (
	"net/http"

	"github.com/riskibarqy/laliga-forwards/internal/interfaces/csvexport"
)

func (h *Handler) GetPointsTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPointsTable")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, toPointsTableDTO(h.rankingService.PointsTable()))
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, listRankingsRequest{Limit: limit}); err != nil {
		writeError(ctx, w, err)
		return
	}

	analysis, err := h.rankingService.BuiltinAnalysis(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "built-in analysis failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toAnalysisDTO(analysis, limit))
}

func (h *Handler) ExportRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportRankings")
	defer span.End()

	req := exportRankingsRequest{Table: r.URL.Query().Get("table")}
	if req.Table == "" {
		req.Table = csvexport.TableScores
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	analysis, err := h.rankingService.BuiltinAnalysis(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "built-in analysis failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	body, err := csvexport.Render(analysis, req.Table)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeCSV(ctx, w, "laliga_forwards_"+req.Table+".csv", body)
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	req := playerDetailRequest{Name: r.PathValue("name")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.rankingService.PlayerDetail(ctx, req.Name)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDetailDTO(detail))
}
