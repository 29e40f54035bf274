package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-management/internal/employee/domain"
)

// LoginEmployeeCommand represents the command to log an employee in
type LoginEmployeeCommand struct {
	Username string
	Password string
}

// LoginEmployeeHandler handles employee login
type LoginEmployeeHandler struct {
	repo      domain.EmployeeRepository
	passwords domain.PasswordScheme
}

// NewLoginEmployeeHandler creates a new login handler
func NewLoginEmployeeHandler(repo domain.EmployeeRepository, passwords domain.PasswordScheme) *LoginEmployeeHandler {
	return &LoginEmployeeHandler{repo: repo, passwords: passwords}
}

// Handle verifies the credentials and returns the matching employee
func (h *LoginEmployeeHandler) Handle(ctx context.Context, cmd LoginEmployeeCommand) (*domain.Employee, error) {
	employee, err := h.repo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, ErrInvalidCredentials
	}

	if !h.passwords.Compare(employee.Password, cmd.Password) {
		return nil, ErrInvalidCredentials
	}

	return employee, nil
}
