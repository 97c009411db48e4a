package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics)
}

func registerRankingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/points-table", handler.GetPointsTable)
	mux.HandleFunc("GET /v1/rankings", handler.ListRankings)
	mux.HandleFunc("GET /v1/rankings/export", handler.ExportRankings)
	mux.HandleFunc("GET /v1/players/{name}", handler.GetPlayerDetail)
	mux.HandleFunc("GET /v1/templates/{kind}", handler.GetTemplate)
	mux.HandleFunc("POST /v1/analyses", handler.AnalyzePlayers)
}

func registerUploadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/uploads", handler.UploadFile)
}
