package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/supplier/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormSupplierRepository struct {
	table *database.Table[domain.Supplier]
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{
		table: database.NewTable[domain.Supplier](db, "Supplier", "supplier_id"),
	}
}

func (r *GormSupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	return r.table.All(ctx)
}

func (r *GormSupplierRepository) FindByID(ctx context.Context, id uint) (*domain.Supplier, error) {
	return r.table.Get(ctx, id)
}

func (r *GormSupplierRepository) FindByName(ctx context.Context, name string) (*domain.Supplier, error) {
	return r.table.GetWhere(ctx, "supplier_name", name)
}

func (r *GormSupplierRepository) FindByContactInfo(ctx context.Context, contactInfo string) (*domain.Supplier, error) {
	return r.table.GetWhere(ctx, "contact_info", contactInfo)
}

func (r *GormSupplierRepository) Create(ctx context.Context, fields domain.SupplierFields) (*domain.SupplierCreated, error) {
	row := &domain.Supplier{SupplierFields: fields}
	if err := r.table.Insert(ctx, row); err != nil {
		return nil, err
	}
	return &domain.SupplierCreated{ID: row.SupplierID, SupplierFields: fields}, nil
}

func (r *GormSupplierRepository) Update(ctx context.Context, id uint, fields domain.SupplierFields) (*domain.SupplierUpdated, error) {
	n, err := r.table.Update(ctx, id, fields.Columns())
	if err != nil {
		return nil, err
	}
	return &domain.SupplierUpdated{SupplierID: id, SupplierFields: fields, RowsAffected: n}, nil
}

func (r *GormSupplierRepository) Delete(ctx context.Context, id uint) (*domain.SupplierDeletion, error) {
	n, err := r.table.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.SupplierDeletion{
		Message:      "Supplier deleted successfully",
		SupplierID:   id,
		RowsAffected: n,
	}, nil
}
