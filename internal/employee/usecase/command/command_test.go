package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/internal/employee/password"
	"github.com/tair/inventory-management/pkg/database"
)

type memoryRepository struct {
	employees []domain.Employee
	findErr   error
	createErr error
}

func (m *memoryRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, e := range m.employees {
		if e.Username == username {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	employee.EmployeeID = uint(len(m.employees) + 1)
	m.employees = append(m.employees, *employee)
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	repo := &memoryRepository{}
	register := NewRegisterEmployeeHandler(repo, password.Plaintext{})
	login := NewLoginEmployeeHandler(repo, password.Plaintext{})
	ctx := context.Background()

	registered, err := register.Handle(ctx, RegisterEmployeeCommand{Username: "a", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.EmployeeID != 1 || registered.Username != "a" || registered.Password != "p" {
		t.Errorf("unexpected registration %+v", registered)
	}

	if _, err := register.Handle(ctx, RegisterEmployeeCommand{Username: "a", Password: "q"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
	if repo.employees[0].Password != "p" {
		t.Errorf("first registration must be unaffected, got %+v", repo.employees[0])
	}

	employee, err := login.Handle(ctx, LoginEmployeeCommand{Username: "a", Password: "p"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if employee.EmployeeID != 1 {
		t.Errorf("unexpected employee %+v", employee)
	}

	for _, cmd := range []LoginEmployeeCommand{{"a", "wrong"}, {"nobody", "p"}} {
		if _, err := login.Handle(ctx, cmd); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login %+v: expected ErrInvalidCredentials, got %v", cmd, err)
		}
	}
}

func TestRegisterWithBcryptEchoesSubmittedPassword(t *testing.T) {
	repo := &memoryRepository{}
	scheme := password.Bcrypt{Cost: 4}

	registered, err := NewRegisterEmployeeHandler(repo, scheme).Handle(context.Background(),
		RegisterEmployeeCommand{Username: "b", Password: "secret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.Password != "secret" {
		t.Errorf("expected submitted password in echo, got %q", registered.Password)
	}
	if repo.employees[0].Password == "secret" {
		t.Error("expected a hash to be stored")
	}

	if _, err := NewLoginEmployeeHandler(repo, scheme).Handle(context.Background(),
		LoginEmployeeCommand{Username: "b", Password: "secret"}); err != nil {
		t.Errorf("login with bcrypt failed: %v", err)
	}
}

func TestRegisterConflictOnInsert(t *testing.T) {
	repo := &memoryRepository{createErr: &database.OperationError{Resource: "employee", Op: database.OpCreate, Conflict: true}}

	_, err := NewRegisterEmployeeHandler(repo, password.Plaintext{}).Handle(context.Background(),
		RegisterEmployeeCommand{Username: "a", Password: "p"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestStoreFailures(t *testing.T) {
	storeErr := &database.OperationError{Resource: "employee", Op: database.OpGet}
	repo := &memoryRepository{findErr: storeErr}

	_, err := NewLoginEmployeeHandler(repo, password.Plaintext{}).Handle(context.Background(), LoginEmployeeCommand{Username: "a"})
	if !errors.Is(err, database.ErrOperationFailed) || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected store failure, got %v", err)
	}

	_, err = NewRegisterEmployeeHandler(repo, password.Plaintext{}).Handle(context.Background(), RegisterEmployeeCommand{Username: "a"})
	if !errors.Is(err, database.ErrOperationFailed) || errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected store failure, got %v", err)
	}
}
