package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/internal/employee/password"
	"github.com/tair/inventory-management/pkg/database"
	"github.com/tair/inventory-management/pkg/httpapi"
)

type memoryRepository struct {
	employees []domain.Employee
	fail      bool
}

func (m *memoryRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	if m.fail {
		return nil, &database.OperationError{Resource: resource, Op: database.OpGet}
	}
	for _, e := range m.employees {
		if e.Username == username {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) Create(ctx context.Context, employee *domain.Employee) error {
	employee.EmployeeID = uint(len(m.employees) + 1)
	m.employees = append(m.employees, *employee)
	return nil
}

func newRouter(repo domain.EmployeeRepository) *mux.Router {
	router := mux.NewRouter()
	NewEmployeeHandler(repo, password.Plaintext{}, httpapi.NewMetrics(prometheus.NewRegistry())).RegisterRoutes(router)
	return router
}

func post(t *testing.T, router http.Handler, path, body string) (int, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, out
}

func TestRegisterAndLoginScenario(t *testing.T) {
	repo := &memoryRepository{}
	router := newRouter(repo)

	status, body := post(t, router, "/employees/register", `{"username":"a","password":"p"}`)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if body["message"] != "Employee registered successfully" {
		t.Errorf("unexpected message %v", body["message"])
	}
	employee, _ := body["employee"].(map[string]interface{})
	if employee["employee_id"] != float64(1) || employee["username"] != "a" || employee["password"] != "p" {
		t.Errorf("unexpected employee echo %v", employee)
	}

	status, body = post(t, router, "/employees/register", `{"username":"a","password":"q"}`)
	if status != http.StatusBadRequest || body["error"] != "Username already exists" {
		t.Errorf("unexpected duplicate response %d %v", status, body)
	}

	status, body = post(t, router, "/employees/login", `{"username":"a","password":"p"}`)
	if status != http.StatusOK || body["message"] != "Login successful" {
		t.Fatalf("unexpected login response %d %v", status, body)
	}
	employee, _ = body["employee"].(map[string]interface{})
	if employee["employee_id"] != float64(1) || employee["username"] != "a" {
		t.Errorf("unexpected login employee %v", employee)
	}
	if _, ok := employee["password"]; ok {
		t.Error("login response must not include the password")
	}

	wrongStatus, wrongBody := post(t, router, "/employees/login", `{"username":"a","password":"wrong"}`)
	unknownStatus, unknownBody := post(t, router, "/employees/login", `{"username":"zed","password":"p"}`)
	if wrongStatus != http.StatusUnauthorized || unknownStatus != http.StatusUnauthorized {
		t.Errorf("expected 401 for both, got %d and %d", wrongStatus, unknownStatus)
	}
	if wrongBody["error"] != "Invalid username or password" || wrongBody["error"] != unknownBody["error"] {
		t.Errorf("expected identical rejections, got %v and %v", wrongBody, unknownBody)
	}
}

func TestEmployeeStoreFailures(t *testing.T) {
	router := newRouter(&memoryRepository{fail: true})

	status, body := post(t, router, "/employees/login", `{"username":"a","password":"p"}`)
	if status != http.StatusInternalServerError || body["error"] != "An error occurred during login" {
		t.Errorf("unexpected login failure %d %v", status, body)
	}

	status, body = post(t, router, "/employees/register", `{"username":"a","password":"p"}`)
	if status != http.StatusInternalServerError || body["error"] != "An error occurred during registration" {
		t.Errorf("unexpected register failure %d %v", status, body)
	}
}

func TestMalformedCredentials(t *testing.T) {
	router := newRouter(&memoryRepository{})

	for _, path := range []string{"/employees/login", "/employees/register"} {
		status, body := post(t, router, path, `{"username":`)
		if status != http.StatusBadRequest || body["error"] != "Invalid request body" {
			t.Errorf("%s: unexpected %d %v", path, status, body)
		}
	}
}
