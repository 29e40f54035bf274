package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentCountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	handler := m.Instrument("OutOfStockItem", "get", func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, http.StatusNotFound, "No out-of-stock item found")
	})

	for i := 0; i < 2; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/inventory-out-of-stock/9", nil))
	}

	got := testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "out_of_stock_item", "get", "404"))
	if got != 2 {
		t.Errorf("expected 2 requests counted, got %v", got)
	}

	if n := testutil.CollectAndCount(m.requestLatency); n != 1 {
		t.Errorf("expected 1 latency series, got %d", n)
	}
}

func TestNewMetricsRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Instrument("category", "list", func(w http.ResponseWriter, r *http.Request) {})(
		httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/categories", nil),
	)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) != 3 {
		t.Errorf("expected 3 metric families, got %d", len(families))
	}
}
