package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-management/internal/inventorylog/domain"
	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/database"
	"github.com/tair/inventory-management/pkg/httpapi"
)

type memoryRepository struct {
	logs []domain.Log
	fail bool
}

func (m *memoryRepository) err() error {
	if m.fail {
		return &database.OperationError{Resource: resource, Op: database.OpList}
	}
	return nil
}

func (m *memoryRepository) List(ctx context.Context) ([]domain.Log, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	return append([]domain.Log{}, m.logs...), nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id uint) (*domain.Log, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	for _, l := range m.logs {
		if l.LogID == id {
			return &l, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.Log, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	out := []domain.Log{}
	for _, l := range m.logs {
		if l.ProductID != nil && *l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memoryRepository) Create(ctx context.Context, fields domain.LogFields) (*domain.LogCreated, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	id := uint(len(m.logs) + 1)
	m.logs = append(m.logs, domain.Log{LogID: id, LogFields: fields})
	return &domain.LogCreated{ID: id, LogFields: fields}, nil
}

type recordingPublisher struct {
	kafka.NopPublisher
	events []kafka.InventoryLogRecordedEvent
	err    error
}

func (p *recordingPublisher) PublishInventoryLogRecorded(ctx context.Context, event kafka.InventoryLogRecordedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type fixture struct {
	repo      *memoryRepository
	publisher *recordingPublisher
	router    *mux.Router
}

func newFixture() *fixture {
	f := &fixture{repo: &memoryRepository{}, publisher: &recordingPublisher{}, router: mux.NewRouter()}
	NewInventoryLogHandler(f.repo, f.publisher, httpapi.NewMetrics(prometheus.NewRegistry())).RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) (int, json.RawMessage) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func errorMessage(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var body httpapi.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return body.Error
}

func TestEmptyListsAreNotFound(t *testing.T) {
	f := newFixture()

	status, raw := f.do(t, http.MethodGet, "/inventory-logs", "")
	if status != http.StatusNotFound || errorMessage(t, raw) != "No inventory logs found" {
		t.Errorf("unexpected list response %d %s", status, raw)
	}

	status, raw = f.do(t, http.MethodGet, "/inventory-logs/product/12", "")
	if status != http.StatusNotFound || errorMessage(t, raw) != "No logs found for this product" {
		t.Errorf("unexpected product response %d %s", status, raw)
	}
}

func TestCreateAndReadLogs(t *testing.T) {
	f := newFixture()

	status, raw := f.do(t, http.MethodPost, "/inventory-logs", `{"product_id":12,"quantity_change":-3,"action_type":"sale"}`)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	var created map[string]interface{}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if created["id"] != float64(1) || created["quantity_change"] != float64(-3) || created["action_type"] != "sale" {
		t.Errorf("unexpected create body %v", created)
	}

	f.do(t, http.MethodPost, "/inventory-logs", `{"product_id":13,"quantity_change":5,"action_type":"restock"}`)

	status, raw = f.do(t, http.MethodGet, "/inventory-logs/product/12", "")
	var logs []domain.Log
	if err := json.Unmarshal(raw, &logs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if status != http.StatusOK || len(logs) != 1 || logs[0].LogID != 1 {
		t.Errorf("unexpected product logs %d %s", status, raw)
	}

	status, raw = f.do(t, http.MethodGet, "/inventory-logs/2", "")
	var log domain.Log
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if status != http.StatusOK || log.ActionType == nil || *log.ActionType != domain.ActionRestock {
		t.Errorf("unexpected log %d %s", status, raw)
	}

	status, raw = f.do(t, http.MethodGet, "/inventory-logs/9", "")
	if status != http.StatusNotFound || errorMessage(t, raw) != "No inventory log found with this ID" {
		t.Errorf("unexpected missing log response %d %s", status, raw)
	}

	if len(f.publisher.events) != 2 || f.publisher.events[0].LogID != 1 {
		t.Errorf("unexpected events %+v", f.publisher.events)
	}
}

func TestNoUpdateOrDeleteRoutes(t *testing.T) {
	f := newFixture()

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		status, _ := f.do(t, method, "/inventory-logs/1", `{}`)
		if status != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", method, status)
		}
	}
}

func TestPublishFailureKeepsResponse(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	status, _ := f.do(t, http.MethodPost, "/inventory-logs", `{"product_id":1}`)
	if status != http.StatusCreated {
		t.Errorf("expected 201, got %d", status)
	}
}

func TestInventoryLogFailures(t *testing.T) {
	f := newFixture()
	f.repo.fail = true

	tests := []struct {
		method  string
		path    string
		body    string
		message string
	}{
		{http.MethodGet, "/inventory-logs", "", "Error fetching inventory logs"},
		{http.MethodGet, "/inventory-logs/1", "", "Error fetching inventory log by ID"},
		{http.MethodGet, "/inventory-logs/product/1", "", "Error fetching logs for product"},
		{http.MethodPost, "/inventory-logs", `{}`, "Error adding inventory log"},
	}

	for _, tt := range tests {
		status, raw := f.do(t, tt.method, tt.path, tt.body)
		if status != http.StatusInternalServerError || errorMessage(t, raw) != tt.message {
			t.Errorf("%s %s: unexpected %d %s", tt.method, tt.path, status, raw)
		}
	}
}
