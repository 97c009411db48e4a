package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_ObserveUpload(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveUpload("custom_template", "accepted", 3)
	m.ObserveUpload("custom_template", "accepted", 5)
	m.ObserveUpload("unknown", "parse_failed", 0)

	if got := testutil.ToFloat64(m.uploads.WithLabelValues("custom_template", "accepted")); got != 2 {
		t.Fatalf("unexpected accepted count: %v", got)
	}
	if got := testutil.ToFloat64(m.uploads.WithLabelValues("unknown", "parse_failed")); got != 1 {
		t.Fatalf("unexpected parse failure count: %v", got)
	}
	if got := testutil.CollectAndCount(m.uploadRows); got != 1 {
		t.Fatalf("expected one row histogram series, got %d", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveUpload("unknown", "rejected", 10)
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveUpload("football_stats", "accepted", 20)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `forwards_uploads_total{format="football_stats",outcome="accepted"} 1`) {
		t.Fatalf("expected upload counter in exposition, got:\n%s", body)
	}
}
