package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/pkg/database"
)

// RegisterEmployeeCommand represents the command to register an employee
type RegisterEmployeeCommand struct {
	Username string
	Password string
}

// RegisteredEmployee echoes a registration. Password is the submitted one.
type RegisteredEmployee struct {
	EmployeeID uint   `json:"employee_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// RegisterEmployeeHandler handles employee registration
type RegisterEmployeeHandler struct {
	repo      domain.EmployeeRepository
	passwords domain.PasswordScheme
}

// NewRegisterEmployeeHandler creates a new registration handler
func NewRegisterEmployeeHandler(repo domain.EmployeeRepository, passwords domain.PasswordScheme) *RegisterEmployeeHandler {
	return &RegisterEmployeeHandler{repo: repo, passwords: passwords}
}

// Handle registers the employee unless the username is taken
func (h *RegisterEmployeeHandler) Handle(ctx context.Context, cmd RegisterEmployeeCommand) (*RegisteredEmployee, error) {
	existing, err := h.repo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	stored, err := h.passwords.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Username: cmd.Username,
		Password: stored,
	}

	// A concurrent registration can still win between the check and the insert
	if err := h.repo.Create(ctx, employee); err != nil {
		if database.IsConflict(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &RegisteredEmployee{
		EmployeeID: employee.EmployeeID,
		Username:   cmd.Username,
		Password:   cmd.Password,
	}, nil
}
