package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/laliga-forwards/internal/interfaces/csvexport"
	"github.com/riskibarqy/laliga-forwards/internal/usecase"
)

const (
	uploadFormField   = "file"
	multipartOverhead = 1 << 20
)

// UploadFile accepts either a raw body (name from ?filename=) or a
// multipart form with a "file" field. ?export=scores|stats answers with
// CSV instead of JSON.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadFile")
	defer span.End()

	req := uploadRequest{
		Filename: r.URL.Query().Get("filename"),
		Export:   r.URL.Query().Get("export"),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	filename, data, err := h.readUpload(w, r, req.Filename)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(uploadAttributes(filename, len(data), req.Export)...)

	result, err := h.uploadService.Ingest(ctx, filename, data)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.Export != "" {
		body, err := csvexport.Render(result.Analysis, req.Export)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeCSV(ctx, w, exportFilename(result.Filename, req.Export), body)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toUploadDTO(result))
}

// exportFilename names the CSV download for an upload. Names that cannot
// be carried in a Content-Disposition header become upload_<table>.csv.
func exportFilename(uploadName, table string) string {
	fallback := "upload_" + table + ".csv"
	base := filepath.Base(uploadName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	switch {
	case base == "", base == ".", base == "..", base == string(filepath.Separator):
		return fallback
	case !utf8.ValidString(base), strings.IndexFunc(base, unicode.IsControl) >= 0:
		return fallback
	}

	name := base + "_" + table + ".csv"
	if mime.FormatMediaType("attachment", map[string]string{"filename": name}) == "" {
		return fallback
	}
	return name
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request, filename string) (string, []byte, error) {
	limit := h.uploadMaxBytes
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", nil, uploadReadError(err, limit)
		}
		return filename, data, nil
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, fmt.Errorf("%w: multipart field %q is required", usecase.ErrInvalidInput, uploadFormField)
		}
		return "", nil, uploadReadError(err, limit)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, uploadReadError(err, limit)
	}
	if filename == "" {
		filename = header.Filename
	}
	return filename, data, nil
}

func uploadReadError(err error, limit int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: upload exceeds %d bytes", usecase.ErrInvalidInput, limit)
	}
	return fmt.Errorf("%w: read upload: %v", usecase.ErrInvalidInput, err)
}
