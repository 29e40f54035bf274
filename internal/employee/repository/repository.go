package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormEmployeeRepository struct {
	table *database.Table[domain.Employee]
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		table: database.NewTable[domain.Employee](db, "Employee", "employee_id"),
	}
}

func (r *GormEmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.table.GetWhere(ctx, "username", username)
}

func (r *GormEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return r.table.Insert(ctx, employee)
}
