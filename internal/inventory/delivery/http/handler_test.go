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

	"github.com/tair/inventory-management/internal/inventory/domain"
	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/database"
	"github.com/tair/inventory-management/pkg/httpapi"
)

type memoryRepository struct {
	rows   map[uint]domain.Item
	nextID uint
	fail   bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: map[uint]domain.Item{}, nextID: 1}
}

func (m *memoryRepository) err(op string) error {
	if m.fail {
		return &database.OperationError{Resource: resource, Op: op}
	}
	return nil
}

func (m *memoryRepository) List(ctx context.Context) ([]domain.Item, error) {
	if err := m.err(database.OpList); err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(m.rows))
	for id := uint(1); id < m.nextID; id++ {
		if row, ok := m.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	if err := m.err(database.OpGet); err != nil {
		return nil, err
	}
	if row, ok := m.rows[id]; ok {
		return &row, nil
	}
	return nil, nil
}

func (m *memoryRepository) Create(ctx context.Context, fields domain.ItemFields) (*domain.ItemCreated, error) {
	if err := m.err(database.OpCreate); err != nil {
		return nil, err
	}
	id := m.nextID
	m.nextID++
	m.rows[id] = domain.Item{ProductID: id, ItemFields: fields}
	return &domain.ItemCreated{ID: id, ItemFields: fields}, nil
}

func (m *memoryRepository) Update(ctx context.Context, id uint, fields domain.ItemFields) (*domain.ItemUpdated, error) {
	if err := m.err(database.OpUpdate); err != nil {
		return nil, err
	}
	var n int64
	if _, ok := m.rows[id]; ok {
		m.rows[id] = domain.Item{ProductID: id, ItemFields: fields}
		n = 1
	}
	return &domain.ItemUpdated{ProductID: id, ItemFields: fields, RowsAffected: n}, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uint) (*domain.ItemDeletion, error) {
	if err := m.err(database.OpDelete); err != nil {
		return nil, err
	}
	var n int64
	if _, ok := m.rows[id]; ok {
		delete(m.rows, id)
		n = 1
	}
	return &domain.ItemDeletion{Message: "Item deleted successfully", ProductID: id, RowsAffected: n}, nil
}

type recordingPublisher struct {
	kafka.NopPublisher
	events []kafka.InventoryItemChangedEvent
	err    error
}

func (p *recordingPublisher) PublishInventoryItemChanged(ctx context.Context, event kafka.InventoryItemChangedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func newRouter(repo domain.InventoryRepository, publisher kafka.Publisher) *mux.Router {
	router := mux.NewRouter()
	NewInventoryHandler(repo, publisher, httpapi.NewMetrics(prometheus.NewRegistry())).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
	}
	return rec, out
}

func TestInventoryLifecycle(t *testing.T) {
	publisher := &recordingPublisher{}
	router := newRouter(newMemoryRepository(), publisher)

	rec, body := do(t, router, http.MethodPost, "/inventory",
		`{"name":"Hammer","category_id":2,"quantity":10,"price":12.5,"supplier_id":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	want := map[string]interface{}{
		"id": float64(1), "name": "Hammer", "category_id": float64(2),
		"quantity": float64(10), "price": 12.5, "supplier_id": float64(3),
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("create %s: expected %v, got %v", k, v, body[k])
		}
	}

	rec, body = do(t, router, http.MethodGet, "/inventory/1", "")
	if rec.Code != http.StatusOK || body["product_id"] != float64(1) || body["name"] != "Hammer" {
		t.Errorf("unexpected get %d %v", rec.Code, body)
	}

	rec, body = do(t, router, http.MethodPut, "/inventory/1", `{"name":"Hammer","quantity":0}`)
	if rec.Code != http.StatusOK || body["productId"] != float64(1) || body["quantity"] != float64(0) {
		t.Errorf("unexpected update %d %v", rec.Code, body)
	}

	rec, body = do(t, router, http.MethodDelete, "/inventory/1", "")
	if rec.Code != http.StatusOK || body["message"] != "Item deleted successfully" || body["productId"] != float64(1) {
		t.Errorf("unexpected delete %d %v", rec.Code, body)
	}

	rec, body = do(t, router, http.MethodGet, "/inventory/1", "")
	if rec.Code != http.StatusNotFound || body["error"] != "No item found with this ID" {
		t.Errorf("unexpected get after delete %d %v", rec.Code, body)
	}

	changes := []string{}
	for _, e := range publisher.events {
		if e.Stock != kafka.StockInStock || e.ProductID != 1 {
			t.Errorf("unexpected event %+v", e)
		}
		changes = append(changes, e.Change)
	}
	if strings.Join(changes, ",") != "created,updated,deleted" {
		t.Errorf("unexpected event sequence %v", changes)
	}
}

func TestBlindWritesPublishNothing(t *testing.T) {
	publisher := &recordingPublisher{}
	router := newRouter(newMemoryRepository(), publisher)

	rec, _ := do(t, router, http.MethodDelete, "/inventory/404", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(httpapi.HeaderRowsAffected) != "0" {
		t.Errorf("expected X-Rows-Affected 0")
	}
	if len(publisher.events) != 0 {
		t.Errorf("expected no events, got %d", len(publisher.events))
	}
}

func TestPublishFailureKeepsResponse(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	router := newRouter(newMemoryRepository(), publisher)

	rec, _ := do(t, router, http.MethodPost, "/inventory", `{"name":"Saw"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 despite publish failure, got %d", rec.Code)
	}
}

func TestListInventoryEmpty(t *testing.T) {
	router := newRouter(newMemoryRepository(), kafka.NopPublisher{})

	rec, _ := do(t, router, http.MethodGet, "/inventory", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
	}
}

func TestInventoryErrors(t *testing.T) {
	failing := newMemoryRepository()
	failing.fail = true

	tests := []struct {
		name    string
		repo    *memoryRepository
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{"list failure", failing, http.MethodGet, "/inventory", "", 500, "Error fetching all inventory items"},
		{"get failure", failing, http.MethodGet, "/inventory/1", "", 500, "Error fetching inventory item by ID"},
		{"create failure", failing, http.MethodPost, "/inventory", `{}`, 500, "Error adding new inventory item"},
		{"update failure", failing, http.MethodPut, "/inventory/1", `{}`, 500, "Error updating inventory item"},
		{"delete failure", failing, http.MethodDelete, "/inventory/1", "", 500, "Error deleting inventory item"},
		{"bad read id", newMemoryRepository(), http.MethodGet, "/inventory/x", "", 404, "No item found with this ID"},
		{"bad write id", newMemoryRepository(), http.MethodPut, "/inventory/x", `{}`, 400, "Invalid item ID"},
		{"malformed body", newMemoryRepository(), http.MethodPost, "/inventory", `[`, 400, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, newRouter(tt.repo, kafka.NopPublisher{}), tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
			if body["error"] != tt.message {
				t.Errorf("expected %q, got %v", tt.message, body["error"])
			}
		})
	}
}
