package httpapi

import (
	"net/http"

	"github.com/riskibarqy/laliga-forwards/internal/domain/ingest"
)

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTemplate")
	defer span.End()

	req := templateRequest{Kind: r.PathValue("kind")}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	content, _ := ingest.Template(req.Kind)
	writeCSV(ctx, w, "laliga_forwards_"+req.Kind+"_template.csv", []byte(content))
}
