package domain

import "context"

// Employee represents an employee account
type Employee struct {
	EmployeeID uint   `json:"employee_id" gorm:"column:employee_id;primaryKey"`
	Username   string `json:"username" gorm:"column:username"`
	Password   string `json:"-" gorm:"column:password"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "Employees"
}

// EmployeeRepository defines the contract for employee data access.
// FindByUsername returns a nil employee and a nil error when nothing matches.
type EmployeeRepository interface {
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
}

// PasswordScheme turns submitted passwords into stored ones and checks them
type PasswordScheme interface {
	Hash(password string) (string, error)
	Compare(stored, candidate string) bool
}
